package syntax

import "bytes"

// LineInfo holds byte-offset metadata for a single source line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the newline begins.
	// Equals EndOffset for a final line without a trailing newline.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines indexes every line of content, including a final line without
// a trailing newline. Empty content yields a single empty line.
func BuildLines(content []byte) []LineInfo {
	var lines []LineInfo
	start := 0
	for {
		idx := bytes.IndexByte(content[start:], '\n')
		if idx < 0 {
			lines = append(lines, LineInfo{
				StartOffset:  start,
				NewlineStart: len(content),
				EndOffset:    len(content),
			})
			return lines
		}
		nl := start + idx
		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: nl,
			EndOffset:    nl + 1,
		})
		start = nl + 1
	}
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Position maps a byte offset to a 1-based line and column.
// Offsets past the end of content map to the end of the last line.
func (t *Tree) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	lo, hi := 0, len(t.Lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.Lines[mid].StartOffset <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{
		Line:   lo + 1,
		Column: offset - t.Lines[lo].StartOffset + 1,
	}
}
