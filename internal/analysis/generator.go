package analysis

import (
	"math/rand/v2"
	"sort"
)

// Generator turns a completed answer set into an analysis Result.
//
// Category keys and tags are a deterministic function of the answers; only
// the variant index drawn for each family is random. A Generator built
// WithRand is not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	cfg    Config
	lookup *Lookup
	rng    *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithLookup replaces the built-in answer tables.
func WithLookup(l *Lookup) Option {
	return func(g *Generator) {
		if l != nil {
			g.lookup = l
		}
	}
}

// WithRand draws variants from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// NewGenerator creates a Generator. Without options it uses DefaultLookup
// and the global random source.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		lookup: DefaultLookup(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Lookup returns the answer table used for category resolution.
func (g *Generator) Lookup() *Lookup {
	return g.lookup
}

// Generate composes the analysis for answers, keyed by step id.
// Missing or unknown answers fall back to the dimension defaults; the
// answers map is only read.
func (g *Generator) Generate(answers map[int]string) Result {
	cats := g.Categorize(answers)

	hook := g.draw(FamilyHooks, cats[DimensionIndustry])
	pain := g.draw(FamilyPains, cats[DimensionPain])
	solution := g.draw(FamilySolutions, cats[DimensionData])
	closing := g.draw(FamilyClosings, "")

	return Result{
		MainText: []TemplateRef{hook, pain},
		SubText:  []TemplateRef{solution, closing},
		Tags:     g.tags(answers),
	}
}

// Categorize resolves each dimension's answer to its category key.
func (g *Generator) Categorize(answers map[int]string) map[Dimension]CategoryKey {
	cats := make(map[Dimension]CategoryKey, len(AllDimensions()))
	for _, d := range AllDimensions() {
		cats[d], _ = g.lookup.Resolve(d, answers[g.cfg.Slot(d)])
	}
	return cats
}

func (g *Generator) draw(f Family, cat CategoryKey) TemplateRef {
	return TemplateRef{
		Family:   f,
		Category: cat,
		Variant:  g.intN(g.cfg.PoolSize(f)),
	}
}

func (g *Generator) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Generator) tags(answers map[int]string) []string {
	tags := make([]string, 0, len(AllDimensions()))
	for _, d := range AllDimensions() {
		if a := answers[g.cfg.Slot(d)]; a != "" {
			tags = append(tags, a)
		}
	}
	return tags
}

// Keys enumerates every localization key a generator with cfg can emit,
// sorted. Presentation layers use it to prove their string tables are
// complete for every locale.
func Keys(cfg Config) []string {
	var keys []string
	for _, f := range AllFamilies() {
		n := cfg.PoolSize(f)
		d := f.Dimension()
		if d == "" {
			for i := 0; i < n; i++ {
				keys = append(keys, TemplateRef{Family: f, Variant: i}.Key())
			}
			continue
		}
		for _, c := range Categories(d) {
			for i := 0; i < n; i++ {
				keys = append(keys, TemplateRef{Family: f, Category: c, Variant: i}.Key())
			}
		}
	}
	sort.Strings(keys)
	return keys
}
