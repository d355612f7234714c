package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/syntax"
)

func parseOK(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	tree, errs := Parse("test.nix", []byte(src))
	require.Empty(t, errs)
	require.NoError(t, syntax.Verify(tree))
	return tree
}

func TestParseLossless(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "ident", src: "a"},
		{name: "attrset binding", src: "{ a = a; }"},
		{name: "dotted key", src: "{ a.b.c = x; }"},
		{name: "select", src: "pkgs.haskellPackages.mtl"},
		{name: "let in", src: "let a = 1; in a"},
		{name: "inherit", src: "{ inherit a b; }"},
		{name: "inherit from", src: "{ inherit (pkgs) mtl; }"},
		{name: "parens", src: "{ a = (b); }"},
		{name: "comments and whitespace", src: "{\n  # key\n  a = a; /* v */\n}\n"},
		{name: "nested sets", src: "{ a = { b = c; }; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseOK(t, tt.src)
			assert.Equal(t, tt.src, syntax.Render(tree.Root))
			assert.Equal(t, len(tt.src), tree.Root.Range.End)
		})
	}
}

func TestParseMalformedStaysLossless(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing semicolon", src: "{ a = b }"},
		{name: "missing value", src: "{ a = ; }"},
		{name: "unterminated set", src: "{ a = b;"},
		{name: "unterminated let", src: "let a = 1;"},
		{name: "stray tokens", src: "a = b"},
		{name: "garbage", src: "{ @@@ }"},
		{name: "empty parens", src: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, errs := Parse("test.nix", []byte(tt.src))
			require.NotNil(t, tree)
			assert.NotEmpty(t, errs)
			assert.Equal(t, tt.src, syntax.Render(tree.Root))
			assert.NoError(t, syntax.Verify(tree))
		})
	}
}

func TestParseBindingShape(t *testing.T) {
	tree := parseOK(t, "{ a = a; }")

	bindings := syntax.FindByKind(tree.Root, syntax.NodeAttrpathValue)
	require.Len(t, bindings, 1)

	binding, ok := syntax.CastAttrpathValue(bindings[0].Node)
	require.True(t, ok)

	// The binding range covers exactly `a = a;`, trivia excluded.
	assert.Equal(t, syntax.TextRange{Start: 2, End: 8}, binding.Syntax().Range)

	path, ok := binding.Attrpath()
	require.True(t, ok)
	attrs := path.Attrs()
	require.Len(t, attrs, 1)

	key, ok := syntax.CastIdent(attrs[0])
	require.True(t, ok)
	assert.Equal(t, "a", key.Name())

	value, ok := binding.Value()
	require.True(t, ok)
	ident, ok := syntax.CastIdent(value)
	require.True(t, ok)
	assert.Equal(t, "a", ident.Name())
}

func TestParseDottedKeyIsOneAttrpath(t *testing.T) {
	tree := parseOK(t, "{ a.b.c = x; }")

	bindings := syntax.FindByKind(tree.Root, syntax.NodeAttrpathValue)
	require.Len(t, bindings, 1)

	binding, _ := syntax.CastAttrpathValue(bindings[0].Node)
	path, ok := binding.Attrpath()
	require.True(t, ok)

	attrs := path.Attrs()
	require.Len(t, attrs, 3)
	assert.Equal(t, "a", attrs[0].Text())
	assert.Equal(t, "b", attrs[1].Text())
	assert.Equal(t, "c", attrs[2].Text())
}

func TestParseSelectIsFlat(t *testing.T) {
	tree := parseOK(t, "pkgs.haskellPackages.mtl")

	selects := syntax.FindByKind(tree.Root, syntax.NodeSelect)
	require.Len(t, selects, 1, "a chained selection parses as one flat select")

	sel, ok := syntax.CastSelect(selects[0].Node)
	require.True(t, ok)

	base, ok := sel.Expr()
	require.True(t, ok)
	assert.Equal(t, "pkgs", base.Text())

	path, ok := sel.Attrpath()
	require.True(t, ok)
	attrs := path.Attrs()
	require.Len(t, attrs, 2)
	assert.Equal(t, "haskellPackages", attrs[0].Text())
	assert.Equal(t, "mtl", attrs[1].Text())
}

func TestParseLetIn(t *testing.T) {
	tree := parseOK(t, "let a = 1; inherit (x) y; in a")

	lets := syntax.FindByKind(tree.Root, syntax.NodeLetIn)
	require.Len(t, lets, 1)

	letIn, ok := syntax.CastLetIn(lets[0].Node)
	require.True(t, ok)

	bindings := letIn.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, syntax.NodeAttrpathValue, bindings[0].Kind)
	assert.Equal(t, syntax.NodeInherit, bindings[1].Kind)

	body, ok := letIn.Body()
	require.True(t, ok)
	assert.Equal(t, "a", body.Text())
}

func TestParseEmptyLetIn(t *testing.T) {
	tree := parseOK(t, "let in { a = b; }")

	lets := syntax.FindByKind(tree.Root, syntax.NodeLetIn)
	require.Len(t, lets, 1)

	letIn, _ := syntax.CastLetIn(lets[0].Node)
	assert.Empty(t, letIn.Bindings())

	body, ok := letIn.Body()
	require.True(t, ok)
	assert.Equal(t, syntax.NodeAttrSet, body.Kind)
}

func TestParseInheritFrom(t *testing.T) {
	tree := parseOK(t, "{ inherit (pkgs.lib) mkDerivation fetchurl; }")

	inherits := syntax.FindByKind(tree.Root, syntax.NodeInherit)
	require.Len(t, inherits, 1)

	inherit, ok := syntax.CastInherit(inherits[0].Node)
	require.True(t, ok)

	from, ok := inherit.From()
	require.True(t, ok)
	assert.Equal(t, syntax.NodeSelect, from.Kind)
	assert.Equal(t, "pkgs.lib", from.Text())

	names := inherit.Names()
	require.Len(t, names, 2)
	assert.Equal(t, "mkDerivation", names[0].Text())
	assert.Equal(t, "fetchurl", names[1].Text())
}

func TestParsePlainInheritHasNoFrom(t *testing.T) {
	tree := parseOK(t, "{ inherit a; }")

	inherits := syntax.FindByKind(tree.Root, syntax.NodeInherit)
	require.Len(t, inherits, 1)

	inherit, _ := syntax.CastInherit(inherits[0].Node)
	_, ok := inherit.From()
	assert.False(t, ok)
}

func TestParseParen(t *testing.T) {
	tree := parseOK(t, "{ a = (b); }")

	parens := syntax.FindByKind(tree.Root, syntax.NodeParen)
	require.Len(t, parens, 1)

	paren, ok := syntax.CastParen(parens[0].Node)
	require.True(t, ok)
	inner, ok := paren.Expr()
	require.True(t, ok)
	assert.Equal(t, "b", inner.Text())
}

func TestParseErrorOffsets(t *testing.T) {
	_, errs := Parse("test.nix", []byte("{ a = ; }"))
	require.NotEmpty(t, errs)
	assert.Equal(t, 6, errs[0].Offset)
	assert.Contains(t, errs[0].Error(), "offset 6")
}

func TestParseEveryByteOwnedOnce(t *testing.T) {
	src := "let /* c */ a = pkgs.a; in { inherit a; b = \"s\"; }"
	tree := parseOK(t, src)

	offset := 0
	err := syntax.Walk(tree.Root, func(el syntax.Element) error {
		if el.IsToken() {
			require.Equal(t, offset, el.Token.Range.Start)
			offset = el.Token.Range.End
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(src), offset)
}
