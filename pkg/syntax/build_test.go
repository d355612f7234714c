package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritStmt(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{name: "single", names: []string{"a"}, want: "inherit a;"},
		{name: "multiple", names: []string{"a", "b"}, want: "inherit a b;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := InheritStmt(tt.names...)

			assert.Equal(t, tt.want, Render(stmt))
			assert.Equal(t, NodeInherit, stmt.Kind)
			assert.Equal(t, TextRange{Start: 0, End: len(tt.want)}, stmt.Range)
		})
	}
}

func TestInheritFromStmt(t *testing.T) {
	base := BuildIdent("pkgs")
	stmt := InheritFromStmt(base, "mtl")

	assert.Equal(t, "inherit (pkgs) mtl;", Render(stmt))
	assert.Equal(t, NodeInherit, stmt.Kind)

	// The synthesized statement is structured, not a text blob: the base is
	// reachable through the inherit-from wrapper.
	inherit, ok := CastInherit(stmt)
	require.True(t, ok)
	from, ok := inherit.From()
	require.True(t, ok)
	assert.Equal(t, "pkgs", from.Text())

	names := inherit.Names()
	require.Len(t, names, 1)
	assert.Equal(t, "mtl", names[0].Text())
}

func TestInheritFromStmtClonesBase(t *testing.T) {
	base := BuildIdent("lib")
	stmt := InheritFromStmt(base, "x")

	inherit, _ := CastInherit(stmt)
	from, ok := inherit.From()
	require.True(t, ok)
	assert.NotSame(t, base, from)
}

func TestRebaseProducesContiguousRanges(t *testing.T) {
	stmt := InheritFromStmt(BuildIdent("pkgs"), "a", "b")

	offset := 0
	//nolint:errcheck // the callback never returns an error
	Walk(stmt, func(el Element) error {
		if el.IsToken() {
			assert.Equal(t, offset, el.Token.Range.Start)
			offset = el.Token.Range.End
		}
		return nil
	})
	assert.Equal(t, stmt.Range.End, offset)
	assert.Equal(t, len(Render(stmt)), offset)
}

func TestBuildIdent(t *testing.T) {
	n := BuildIdent("x'")

	assert.Equal(t, NodeIdent, n.Kind)
	assert.Equal(t, "x'", Render(n))

	ident, ok := CastIdent(n)
	require.True(t, ok)
	assert.Equal(t, "x'", ident.Name())
}
