package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/quiz"
	"github.com/byond/leadquiz/internal/screen"
)

func newQuizCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the potential check",
		Long: `Take the potential check.

Without --plain the full-screen app opens directly at the first question.
With --plain the questions are asked line by line on stdin/stdout, which
works in any terminal and in pipes. Plain mode is also used when stdin is
not a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			if !plain && !isTerminal(cmd.InOrStdin()) {
				c.log.Debug("stdin is not a terminal, using plain quiz")
				plain = true
			}
			if !plain {
				return runApp(cmd, c, true)
			}
			return runPlainQuiz(cmd, c.env())
		},
	}
	cmd.Flags().Bool("plain", false, "Ask the questions line by line instead of opening the TUI")
	return cmd
}

func runPlainQuiz(cmd *cobra.Command, env *screen.Env) error {
	out := cmd.OutOrStdout()
	catalog, err := env.Bundle.Catalog()
	if err != nil {
		return err
	}

	ctrl := quiz.NewController(catalog, env.NewGenerator(), quiz.Options{
		ProcessingDelay: env.Config.ProcessingDelay(),
		Logger:          env.Log().Named("quiz").With(zap.String("locale", env.Bundle.Locale()), zap.Bool("plain", true)),
	})
	defer ctrl.Dispose()

	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	scanner := bufio.NewScanner(cmd.InOrStdin())

	heading.Fprintf(out, "%s\n", env.T("quiz.title"))
	fmt.Fprintln(out)

	for ctrl.Phase() == quiz.PhaseInProgress {
		step, _ := ctrl.Current()
		dim.Fprintf(out, "── %s ──\n", env.Tf("quiz.step", ctrl.StepNumber(), ctrl.Total()))
		fmt.Fprintln(out, step.Question)
		for i, opt := range step.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		var choice string
		for choice == "" {
			fmt.Fprintf(out, "\n%s: ", env.T("keys.answer"))
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return scanner.Err()
			}
			choice = pickOption(step.Options, scanner.Text())
		}
		fmt.Fprintln(out)
		ctrl.RecordAnswer(choice)
	}

	if ctrl.Phase() == quiz.PhaseProcessing {
		dim.Fprintf(out, "%s …\n\n", env.T("quiz.processing"))
		ctrl.CompleteAfter()
		select {
		case <-ctrl.Done():
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}

	res, ok := ctrl.Result()
	if !ok {
		return fmt.Errorf("quiz session %s ended without a result", ctrl.ID())
	}
	printAnalysis(out, env, env.Bundle.Compose(res))
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// pickOption maps a typed line to an option: a 1-based number selects that
// option, any other non-blank text is taken as is.
func pickOption(options []string, line string) string {
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1]
		}
		return ""
	}
	return line
}

func printAnalysis(w io.Writer, env *screen.Env, a i18n.Analysis) {
	heading := color.New(color.FgCyan, color.Bold)
	accent := color.New(color.FgYellow)
	link := color.New(color.FgGreen, color.Underline)

	heading.Fprintf(w, "%s\n", env.T("quiz.result_title"))
	if len(a.Tags) > 0 {
		accent.Fprintf(w, "[%s]\n", strings.Join(a.Tags, "] ["))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.MainText())
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.SubText())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: ", env.T("quiz.result_cta"))
	link.Fprintln(w, env.Config.BookingURL)
}
