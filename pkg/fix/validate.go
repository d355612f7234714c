package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit whose range does not fit the content.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ValidateEdits checks that every edit has a well-formed, in-bounds range.
// Returns the first violation found, or nil.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits orders edits by start offset, then end offset, for deterministic
// application.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// FilterConflicts splits a sorted slice into non-overlapping edits to apply
// and overlapping edits to skip. The earlier edit by start position wins;
// skipped edits are resolved by a later lint pass over the fixed content.
func FilterConflicts(edits []TextEdit) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	accepted = make([]TextEdit, 0, len(edits))
	accepted = append(accepted, edits[0])
	lastEnd := edits[0].EndOffset

	for _, edit := range edits[1:] {
		if edit.StartOffset >= lastEnd {
			accepted = append(accepted, edit)
			lastEnd = edit.EndOffset
		} else {
			skipped = append(skipped, edit)
		}
	}
	return accepted, skipped
}

// PrepareEdits validates, sorts, and filters a batch of edits. It never
// errors on conflicts, only on out-of-bounds ranges.
func PrepareEdits(edits []TextEdit, contentLen int) (accepted, skipped []TextEdit, err error) {
	if len(edits) == 0 {
		return nil, nil, nil
	}
	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	accepted, skipped = FilterConflicts(sorted)
	return accepted, skipped, nil
}
