package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/byond/leadquiz/internal/analysis"
	"github.com/byond/leadquiz/internal/catalog"
	"github.com/byond/leadquiz/internal/i18n"
)

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the content packs",
		Long: `Check every loaded content pack: schema, quiz catalog, analysis keys,
solutions texts, and key parity with the fallback locale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := c.env()
			problems := validateRegistry(c.reg, env.Analysis)
			printProblems(cmd.OutOrStdout(), c.reg, problems)
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) in content packs", len(problems))
			}
			return nil
		},
	}
}

// validateRegistry runs the pack checks plus the solutions catalog and
// parity checks.
func validateRegistry(reg *i18n.Registry, cfg analysis.Config) []i18n.Problem {
	problems := reg.Check(cfg)

	bundles := reg.Bundles()
	if len(bundles) == 0 {
		return problems
	}
	fallback := bundles[0]
	for _, b := range bundles {
		for _, k := range b.Missing(catalog.Keys()) {
			problems = append(problems, i18n.Problem{Locale: b.Locale(), Kind: i18n.ProblemMissingKey, Detail: k})
		}
		if b == fallback {
			continue
		}
		for _, k := range b.Missing(fallback.Keys()) {
			problems = append(problems, i18n.Problem{
				Locale: b.Locale(),
				Kind:   i18n.ProblemMissingKey,
				Detail: fmt.Sprintf("%s (present in %s)", k, fallback.Locale()),
			})
		}
	}
	return problems
}

func printProblems(w io.Writer, reg *i18n.Registry, problems []i18n.Problem) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	byLocale := make(map[string][]i18n.Problem)
	for _, p := range problems {
		byLocale[p.Locale] = append(byLocale[p.Locale], p)
	}

	for _, b := range reg.Bundles() {
		ps := byLocale[b.Locale()]
		if len(ps) == 0 {
			green.Fprint(w, "✓ ")
			fmt.Fprintf(w, "%s (%s): %d keys\n", b.Locale(), b.Name(), len(b.Keys()))
			continue
		}
		red.Fprint(w, "✗ ")
		bold.Fprintf(w, "%s (%s): %d problem(s)\n", b.Locale(), b.Name(), len(ps))
		for _, p := range ps {
			fmt.Fprintf(w, "    %-16s %s\n", p.Kind, p.Detail)
		}
	}
}
