package analysis

// DefaultPoolSize is the number of variants per template family in the
// bundled content packs.
const DefaultPoolSize = 5

// Config controls which answers feed the generator and how many template
// variants each family offers.
type Config struct {
	// Slots maps each dimension to the quiz step id it is read from.
	Slots map[Dimension]int

	// PoolSizes is the number of variants available per family.
	// Content packs may grow, so this is never assumed to be 5.
	PoolSizes map[Family]int
}

// DefaultConfig returns the slot layout of the bundled quiz
// (industry = step 1, pain = step 3, data = step 4) and a pool of
// DefaultPoolSize variants for every family.
func DefaultConfig() Config {
	return Config{
		Slots: map[Dimension]int{
			DimensionIndustry: 1,
			DimensionPain:     3,
			DimensionData:     4,
		},
		PoolSizes: map[Family]int{
			FamilyHooks:     DefaultPoolSize,
			FamilyPains:     DefaultPoolSize,
			FamilySolutions: DefaultPoolSize,
			FamilyClosings:  DefaultPoolSize,
		},
	}
}

// WithPoolSize returns a copy of c with every family set to n variants.
func (c Config) WithPoolSize(n int) Config {
	out := Config{
		Slots:     make(map[Dimension]int, len(c.Slots)),
		PoolSizes: make(map[Family]int, len(AllFamilies())),
	}
	for d, id := range c.Slots {
		out.Slots[d] = id
	}
	for _, f := range AllFamilies() {
		out.PoolSizes[f] = n
	}
	return out
}

// PoolSize returns the variant count for f. Missing or non-positive sizes
// count as a single variant so generation can never fail.
func (c Config) PoolSize(f Family) int {
	if n := c.PoolSizes[f]; n > 0 {
		return n
	}
	return 1
}

// Slot returns the step id read for d, or 0 when d is not wired.
func (c Config) Slot(d Dimension) int {
	return c.Slots[d]
}
