// Package catalog lists the use cases and engagement packages shown on the
// solutions screen. Only identifiers live here; the texts come from the
// locale packs.
package catalog

import (
	"fmt"
	"slices"
)

// Category groups use cases on the solutions screen.
type Category string

const (
	CategoryAll       Category = "all"
	CategorySales     Category = "sales"
	CategorySupport   Category = "support"
	CategoryOps       Category = "ops"
	CategoryHR        Category = "hr"
	CategoryFinance   Category = "finance"
	CategoryLegal     Category = "legal"
	CategoryIT        Category = "it"
	CategoryMarketing Category = "marketing"
	CategoryLogistics Category = "logistics"
)

// LabelKey returns the message key of the category label.
func (c Category) LabelKey() string {
	if c == CategoryAll {
		return "solutions.filter_all"
	}
	return "use_case_categories." + string(c)
}

// UseCase is one showcased automation.
type UseCase struct {
	ID       string
	Category Category
	// HasROI reports whether the pack carries a ROI line for the use case.
	HasROI bool
}

func (u UseCase) TitleKey() string       { return "use_cases." + u.ID + ".title" }
func (u UseCase) DescriptionKey() string { return "use_cases." + u.ID + ".description" }
func (u UseCase) ROIKey() string         { return "use_cases." + u.ID + ".roi" }

// Package is an engagement model. Index is its position in the packs'
// "packages" list.
type Package struct {
	Index int
	// Custom packages have no fixed price.
	Custom bool
	// Featured is highlighted in the listing.
	Featured bool
}

// Key returns the message key of field ("title", "price", "duration",
// "outcome", "features").
func (p Package) Key(field string) string {
	return fmt.Sprintf("packages.%d.%s", p.Index, field)
}

var useCases = []UseCase{
	{ID: "s1", Category: CategorySales, HasROI: true},
	{ID: "su1", Category: CategorySupport, HasROI: true},
	{ID: "op1", Category: CategoryOps, HasROI: true},
	{ID: "hr1", Category: CategoryHR},
	{ID: "fi1", Category: CategoryFinance, HasROI: true},
	{ID: "le1", Category: CategoryLegal},
	{ID: "it1", Category: CategoryIT},
	{ID: "mk1", Category: CategoryMarketing, HasROI: true},
	{ID: "lg1", Category: CategoryLogistics},
}

var packages = []Package{
	{Index: 0},
	{Index: 1, Featured: true},
	{Index: 2, Custom: true},
}

// UseCases returns every use case in display order.
func UseCases() []UseCase {
	return slices.Clone(useCases)
}

// Packages returns the engagement packages in display order.
func Packages() []Package {
	return slices.Clone(packages)
}

// Categories returns CategoryAll followed by the distinct use case
// categories in first-seen order.
func Categories() []Category {
	out := []Category{CategoryAll}
	for _, u := range useCases {
		if !slices.Contains(out, u.Category) {
			out = append(out, u.Category)
		}
	}
	return out
}

// Filter returns the use cases in cat. CategoryAll returns all of them.
func Filter(cat Category) []UseCase {
	if cat == CategoryAll {
		return UseCases()
	}
	var out []UseCase
	for _, u := range useCases {
		if u.Category == cat {
			out = append(out, u)
		}
	}
	return out
}

// Keys returns every message key the solutions screen resolves.
func Keys() []string {
	var keys []string
	for _, c := range Categories() {
		keys = append(keys, c.LabelKey())
	}
	for _, u := range useCases {
		keys = append(keys, u.TitleKey(), u.DescriptionKey())
		if u.HasROI {
			keys = append(keys, u.ROIKey())
		}
	}
	for _, p := range packages {
		keys = append(keys, p.Key("title"), p.Key("duration"), p.Key("outcome"), p.Key("features")+".0")
		if !p.Custom {
			keys = append(keys, p.Key("price"))
		}
	}
	return keys
}
