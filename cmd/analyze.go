package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/byond/leadquiz/internal/analysis"
	"github.com/byond/leadquiz/internal/i18n"
	"github.com/byond/leadquiz/internal/screen"
)

func newAnalyzeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate the analysis for a set of answers",
		Long: `Generate the analysis for a set of answers without taking the quiz.

Answers are given as STEP=TEXT, e.g.
  leadquiz analyze --answer "1=SaaS / Tech" --answer "3=Scaling issues"
Steps without an answer fall back to the default category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, c.env())
		},
	}
	cmd.Flags().StringArray("answer", nil, "Answer as STEP=TEXT (repeatable)")
	cmd.Flags().Uint64("seed", 0, "Seed for the variant draw (0 = random)")
	cmd.Flags().String("format", "text", "Output format: text, json, markdown, pretty or html")
	return cmd
}

// analyzeOutput is the json shape of the analyze command.
type analyzeOutput struct {
	Locale   string          `json:"locale"`
	Result   analysis.Result `json:"result"`
	Analysis i18n.Analysis   `json:"analysis"`
}

func runAnalyze(cmd *cobra.Command, env *screen.Env) error {
	raw, _ := cmd.Flags().GetStringArray("answer")
	seed, _ := cmd.Flags().GetUint64("seed")
	format, _ := cmd.Flags().GetString("format")

	answers, err := parseAnswers(raw)
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithLookup(env.Lookup)}
	if seed != 0 {
		opts = append(opts, analysis.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	gen := analysis.NewGenerator(env.Analysis, opts...)
	res := gen.Generate(answers)
	composed := env.Bundle.Compose(res)

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		printAnalysis(out, env, composed)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeOutput{Locale: env.Bundle.Locale(), Result: res, Analysis: composed})
	case "markdown":
		_, err := out.Write(analysisMarkdown(env, composed))
		return err
	case "pretty":
		return renderPretty(out, env, composed)
	case "html":
		return renderHTML(out, env, composed)
	default:
		return fmt.Errorf("invalid format %q: must be text, json, markdown, pretty or html", format)
	}
}

// parseAnswers turns STEP=TEXT pairs into an answer map.
func parseAnswers(raw []string) (map[int]string, error) {
	answers := make(map[int]string, len(raw))
	for _, r := range raw {
		id, text, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want STEP=TEXT", r)
		}
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid answer %q: step must be a positive number", r)
		}
		answers[n] = strings.TrimSpace(text)
	}
	return answers, nil
}

// analysisMarkdown lays the analysis out as a markdown panel: heading,
// tags as code spans, main text, sub text in italics, booking link.
// codeSpan wraps s in a Markdown code span whose fence is longer than any
// backtick run inside s. Answers are free text.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

func analysisMarkdown(env *screen.Env, a i18n.Analysis) []byte {
	var md bytes.Buffer
	fmt.Fprintf(&md, "## %s\n\n", env.T("quiz.result_title"))
	if len(a.Tags) > 0 {
		tags := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			tags[i] = codeSpan(t)
		}
		fmt.Fprintf(&md, "%s\n\n", strings.Join(tags, " "))
	}
	fmt.Fprintf(&md, "%s\n\n", a.MainText())
	fmt.Fprintf(&md, "*%s*\n\n", a.SubText())
	fmt.Fprintf(&md, "[%s](%s)\n", env.T("quiz.result_cta"), env.Config.BookingURL)
	return md.Bytes()
}

// renderHTML writes the analysis as an HTML fragment.
func renderHTML(w io.Writer, env *screen.Env, a i18n.Analysis) error {
	if err := goldmark.Convert(analysisMarkdown(env, a), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// renderPretty renders the analysis for the terminal in the configured
// theme, or without styling when color output is off.
func renderPretty(w io.Writer, env *screen.Env, a i18n.Analysis) error {
	style := env.Config.Theme
	if color.NoColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(string(analysisMarkdown(env, a)))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
