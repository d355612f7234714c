package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nixlint/pkg/config"
	"github.com/yaklabco/nixlint/pkg/lint"
)

func newFixPipeline(t *testing.T) *lint.Pipeline {
	t.Helper()
	reg := lint.NewRegistry()
	RegisterAll(reg)
	engine := lint.NewEngine(reg, config.NewConfig())
	return lint.NewPipeline(engine, lint.NewSession(nil))
}

func TestFixConvergesAcrossRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "inherit rules",
			src:  "{ a = a; b = lib.b; c = d; }",
			want: "{ inherit a; inherit (lib) b; c = d; }",
		},
		{
			name: "overlapping fixes resolved by re-lint",
			// The empty let-in covers the parenthesized body, so only the
			// outer fix applies on the first pass; the parens are removed on
			// the next one.
			src:  "{ x = let in (y); }",
			want: "{ x = y; }",
		},
		{
			name: "clean input unchanged",
			src:  "{ inherit a; b = c.d; }",
			want: "{ inherit a; b = c.d; }",
		},
	}

	pl := newFixPipeline(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, err := pl.Process(context.Background(), "test.nix", []byte(tt.src), lint.PipelineOptions{Fix: true})
			require.NoError(t, err)

			got := tt.src
			if pr.Modified {
				got = string(pr.ModifiedContent)
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, pr.HasIssues(), "fixed output must be clean")
		})
	}
}

func TestFixOutputIsStable(t *testing.T) {
	pl := newFixPipeline(t)
	src := "{ a = a; x = let in (y); }"

	pr, err := pl.Process(context.Background(), "test.nix", []byte(src), lint.PipelineOptions{Fix: true})
	require.NoError(t, err)
	require.True(t, pr.Modified)

	again, err := pl.Process(context.Background(), "test.nix", pr.ModifiedContent, lint.PipelineOptions{Fix: true})
	require.NoError(t, err)
	assert.False(t, again.Modified, "a second fix run must change nothing")
}
