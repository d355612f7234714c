// Package fix provides range-based text edits and their application logic.
//
// Edits are expressed against one original offset space. Applying a batch is
// only defined for non-overlapping edits: they are sorted by start offset and
// applied in a single left-to-right pass, so no edit ever sees offsets
// invalidated by another. Overlapping edits are never merged; later ones (by
// start position) are skipped and the caller re-lints to pick them up.
package fix

// TextEdit replaces the bytes [StartOffset, EndOffset) with NewText.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}
