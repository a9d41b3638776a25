package analysis

import (
	"encoding/json"
	"fmt"
)

// Dimension is an answer slot the generator reads.
type Dimension string

const (
	DimensionIndustry Dimension = "industry"
	DimensionPain     Dimension = "pain"
	DimensionData     Dimension = "data"
)

// AllDimensions returns the dimensions in slot order.
func AllDimensions() []Dimension {
	return []Dimension{DimensionIndustry, DimensionPain, DimensionData}
}

// CategoryKey is the canonical, locale-independent category of an answer.
type CategoryKey string

const (
	// Industry
	CategoryProduction CategoryKey = "production"
	CategorySaaS       CategoryKey = "saas"
	CategoryAgency     CategoryKey = "agency"
	CategoryRetail     CategoryKey = "retail"

	// Pain
	CategoryCosts        CategoryKey = "costs"
	CategoryTime         CategoryKey = "time"
	CategoryTransparency CategoryKey = "transparency"
	CategoryScaling      CategoryKey = "scaling"

	// Data maturity
	CategoryChaos     CategoryKey = "chaos"
	CategoryERP       CategoryKey = "erp"
	CategoryWarehouse CategoryKey = "warehouse"
	CategorySilos     CategoryKey = "silos"
)

// Categories returns the categories of a dimension in display order.
func Categories(d Dimension) []CategoryKey {
	switch d {
	case DimensionIndustry:
		return []CategoryKey{CategoryProduction, CategorySaaS, CategoryAgency, CategoryRetail}
	case DimensionPain:
		return []CategoryKey{CategoryCosts, CategoryTime, CategoryTransparency, CategoryScaling}
	case DimensionData:
		return []CategoryKey{CategoryChaos, CategoryERP, CategoryWarehouse, CategorySilos}
	default:
		return nil
	}
}

// DefaultCategory returns the fallback category used when an answer is
// missing or not found in the lookup table.
func DefaultCategory(d Dimension) CategoryKey {
	switch d {
	case DimensionIndustry:
		return CategoryAgency
	case DimensionPain:
		return CategoryTime
	case DimensionData:
		return CategoryChaos
	default:
		return ""
	}
}

// Family is a group of interchangeable message templates.
type Family string

const (
	FamilyHooks     Family = "hooks"
	FamilyPains     Family = "pains"
	FamilySolutions Family = "solutions"
	FamilyClosings  Family = "closings"
)

// AllFamilies returns the template families in composition order.
func AllFamilies() []Family {
	return []Family{FamilyHooks, FamilyPains, FamilySolutions, FamilyClosings}
}

// Dimension returns the answer dimension selecting the family's category.
// Closings are unconditional and return the empty dimension.
func (f Family) Dimension() Dimension {
	switch f {
	case FamilyHooks:
		return DimensionIndustry
	case FamilyPains:
		return DimensionPain
	case FamilySolutions:
		return DimensionData
	default:
		return ""
	}
}

// KeyPrefix is the namespace of every template key.
const KeyPrefix = "analysis"

// TemplateRef points at one localized template variant. The presentation
// layer resolves it through its string table; the generator never does.
type TemplateRef struct {
	Family   Family
	Category CategoryKey
	Variant  int
}

// Key returns the opaque localization key, e.g. "analysis.hooks.saas.2"
// or "analysis.closings.4".
func (r TemplateRef) Key() string {
	if r.Category == "" {
		return fmt.Sprintf("%s.%s.%d", KeyPrefix, r.Family, r.Variant)
	}
	return fmt.Sprintf("%s.%s.%s.%d", KeyPrefix, r.Family, r.Category, r.Variant)
}

func (r TemplateRef) String() string {
	return r.Key()
}

// MarshalJSON encodes the reference as its key.
func (r TemplateRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Key())
}

// Result is the composed analysis for one completed quiz session.
type Result struct {
	// MainText holds the hook and pain-bridge references.
	MainText []TemplateRef `json:"main_text_keys"`

	// SubText holds the data-solution and closing references.
	SubText []TemplateRef `json:"sub_text_keys"`

	// Tags are the raw industry, pain and data answers, empty ones omitted.
	Tags []string `json:"tags"`
}

// MainTextKeys returns the localization keys of MainText.
func (r Result) MainTextKeys() []string {
	return refKeys(r.MainText)
}

// SubTextKeys returns the localization keys of SubText.
func (r Result) SubTextKeys() []string {
	return refKeys(r.SubText)
}

// Refs returns all template references in composition order.
func (r Result) Refs() []TemplateRef {
	refs := make([]TemplateRef, 0, len(r.MainText)+len(r.SubText))
	refs = append(refs, r.MainText...)
	refs = append(refs, r.SubText...)
	return refs
}

func refKeys(refs []TemplateRef) []string {
	keys := make([]string, len(refs))
	for i, r := range refs {
		keys[i] = r.Key()
	}
	return keys
}
