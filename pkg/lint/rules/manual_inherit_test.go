package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualInherit(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		matches int
	}{
		{name: "same key and value", src: "{ a = a; }", matches: 1},
		{name: "different value", src: "{ b = c; }", matches: 0},
		{name: "dotted key", src: "{ a.b = a.b; }", matches: 0},
		{name: "selection value", src: "{ a = a.b; }", matches: 0},
		{name: "string value", src: `{ a = "a"; }`, matches: 0},
		{name: "let binding", src: "let a = a; in a", matches: 1},
		{name: "multiple bindings", src: "{ a = a; b = b; c = d; }", matches: 2},
		{name: "nested set", src: "{ outer = { a = a; }; }", matches: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := lintWith(t, tt.src, NewManualInheritRule())
			assert.Len(t, reports, tt.matches)
		})
	}
}

func TestManualInheritReport(t *testing.T) {
	reports := lintWith(t, "{ a = a; }", NewManualInheritRule())
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "manual_inherit", report.RuleName)
	assert.Equal(t, 3, report.Code)
	assert.Equal(t, "This assignment is better written with `inherit`", report.Message)
	// The range covers exactly `a = a;`.
	assert.Equal(t, 2, report.Range.Start)
	assert.Equal(t, 8, report.Range.End)
}

func TestManualInheritFix(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "attrset", src: "{ a = a; }", want: "{ inherit a; }"},
		{name: "let", src: "let a = a; in a", want: "let inherit a; in a"},
		{name: "preserves surroundings", src: "{\n  a = a;\n  b = c;\n}\n", want: "{\n  inherit a;\n  b = c;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := lintWith(t, tt.src, NewManualInheritRule())
			require.NotEmpty(t, reports)
			assert.Equal(t, tt.want, applyFixes(t, tt.src, reports))
		})
	}
}

func TestManualInheritFixIsIdempotent(t *testing.T) {
	src := "{ a = a; }"
	fixed := applyFixes(t, src, lintWith(t, src, NewManualInheritRule()))

	assert.Empty(t, lintWith(t, fixed, NewManualInheritRule()))
}
