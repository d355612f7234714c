package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nixlint/pkg/lint"
	_ "github.com/yaklabco/nixlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/nixlint/pkg/reporter"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listRules(os.Stdout)
		},
	}
}

func listRules(w io.Writer) error {
	for _, rule := range lint.DefaultRegistry.Rules() {
		kinds := make([]string, 0, len(rule.MatchKinds()))
		for _, k := range rule.MatchKinds() {
			kinds = append(kinds, k.String())
		}
		if _, err := fmt.Fprintf(w, "%s  %-22s %s (matches: %s)\n",
			reporter.RuleTag(rule.Code()),
			rule.Name(),
			rule.Note(),
			strings.Join(kinds, ", "),
		); err != nil {
			return err
		}
	}
	return nil
}
