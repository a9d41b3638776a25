package i18n

import (
	"fmt"

	"github.com/byond/leadquiz/internal/analysis"
)

// ProblemKind classifies a content pack defect.
type ProblemKind string

const (
	ProblemCatalog        ProblemKind = "catalog"         // quiz steps do not form a valid catalog
	ProblemMissingKey     ProblemKind = "missing_key"     // an analysis key has no text
	ProblemDimension      ProblemKind = "dimension"       // slot step lacks or misplaces its dimension
	ProblemUnmappedOption ProblemKind = "unmapped_option" // slot option has no category
)

// Problem is one defect found by Check.
type Problem struct {
	Locale string      `json:"locale"`
	Kind   ProblemKind `json:"kind"`
	Detail string      `json:"detail"`
}

func (p Problem) String() string {
	return fmt.Sprintf("[%s] %s: %s", p.Locale, p.Kind, p.Detail)
}

// Check verifies one bundle against the generator configuration: the quiz
// must form a catalog, every key the generator can emit must resolve, and
// each slot step must declare its dimension with a category on every option.
func (b *Bundle) Check(cfg analysis.Config) []Problem {
	var out []Problem
	add := func(kind ProblemKind, format string, args ...any) {
		out = append(out, Problem{Locale: b.locale, Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	if _, err := b.Catalog(); err != nil {
		add(ProblemCatalog, "%v", err)
	}

	for _, k := range b.Missing(analysis.Keys(cfg)) {
		add(ProblemMissingKey, "%s", k)
	}

	byID := make(map[int]PackStep, len(b.steps))
	for _, s := range b.steps {
		byID[s.ID] = s
	}
	for _, d := range analysis.AllDimensions() {
		id := cfg.Slot(d)
		s, ok := byID[id]
		if !ok {
			add(ProblemDimension, "%s reads step %d which does not exist", d, id)
			continue
		}
		if s.Dimension != string(d) {
			add(ProblemDimension, "step %d should declare dimension %q, has %q", id, d, s.Dimension)
			continue
		}
		for i, o := range s.Options {
			if o.Category == "" {
				add(ProblemUnmappedOption, "step %d option %d (%q) has no category", id, i+1, o.Text)
			}
		}
	}

	for _, s := range b.steps {
		if s.Dimension == "" {
			continue
		}
		if cfg.Slot(analysis.Dimension(s.Dimension)) != s.ID {
			add(ProblemDimension, "step %d declares %q but the analysis reads step %d",
				s.ID, s.Dimension, cfg.Slot(analysis.Dimension(s.Dimension)))
		}
	}
	return out
}

// Check runs Bundle.Check on every registered bundle.
func (r *Registry) Check(cfg analysis.Config) []Problem {
	var out []Problem
	for _, b := range r.Bundles() {
		out = append(out, b.Check(cfg)...)
	}
	return out
}
