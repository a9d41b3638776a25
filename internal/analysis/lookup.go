package analysis

// Lookup maps raw answer text to category keys for every supported locale.
// Matching is exact; unknown text resolves to the dimension's default.
type Lookup struct {
	tables map[Dimension]map[string]CategoryKey
}

// Entry is a single (dimension, raw text) → category mapping.
type Entry struct {
	Dimension Dimension
	Text      string
	Category  CategoryKey
}

// NewLookup creates a Lookup from the given entries.
func NewLookup(entries ...Entry) *Lookup {
	l := &Lookup{tables: make(map[Dimension]map[string]CategoryKey)}
	l.Add(entries...)
	return l
}

// DefaultLookup returns the built-in German and English tables.
func DefaultLookup() *Lookup {
	return NewLookup(defaultEntries()...)
}

// Add registers entries. Later entries win for identical text.
func (l *Lookup) Add(entries ...Entry) {
	for _, e := range entries {
		if e.Text == "" || e.Category == "" {
			continue
		}
		t := l.tables[e.Dimension]
		if t == nil {
			t = make(map[string]CategoryKey)
			l.tables[e.Dimension] = t
		}
		t[e.Text] = e.Category
	}
}

// Resolve returns the category for text in dimension d. The second return
// value reports whether the text was found; when it was not, the category
// is DefaultCategory(d).
func (l *Lookup) Resolve(d Dimension, text string) (CategoryKey, bool) {
	if l != nil {
		if key, ok := l.tables[d][text]; ok {
			return key, true
		}
	}
	return DefaultCategory(d), false
}

// Len returns the number of entries registered for d.
func (l *Lookup) Len(d Dimension) int {
	if l == nil {
		return 0
	}
	return len(l.tables[d])
}

func defaultEntries() []Entry {
	return []Entry{
		// Industry, DE
		{DimensionIndustry, "Produktion / Logistik", CategoryProduction},
		{DimensionIndustry, "SaaS / Tech", CategorySaaS},
		{DimensionIndustry, "Dienstleistung / Agentur", CategoryAgency},
		{DimensionIndustry, "Handel / E-Commerce", CategoryRetail},
		// Industry, EN
		{DimensionIndustry, "Production / Logistics", CategoryProduction},
		{DimensionIndustry, "Service / Agency", CategoryAgency},
		{DimensionIndustry, "Retail / E-Commerce", CategoryRetail},

		// Pain, DE
		{DimensionPain, "Zu hohe Prozesskosten", CategoryCosts},
		{DimensionPain, "Fachkräftemangel / Zeit", CategoryTime},
		{DimensionPain, "Fehlende Daten-Transparenz", CategoryTransparency},
		{DimensionPain, "Skalierungsprobleme", CategoryScaling},
		// Pain, EN
		{DimensionPain, "Process costs too high", CategoryCosts},
		{DimensionPain, "Labor shortage / Time", CategoryTime},
		{DimensionPain, "Lack of data transparency", CategoryTransparency},
		{DimensionPain, "Scaling issues", CategoryScaling},

		// Data maturity, DE ("Chaos / Excel" is shared with EN)
		{DimensionData, "Chaos / Excel", CategoryChaos},
		{DimensionData, "Solides ERP/CRM", CategoryERP},
		{DimensionData, "Data Warehouse vorhanden", CategoryWarehouse},
		{DimensionData, "Silos (viele Tools)", CategorySilos},
		// Data maturity, EN
		{DimensionData, "Solid ERP/CRM", CategoryERP},
		{DimensionData, "Data Warehouse exists", CategoryWarehouse},
		{DimensionData, "Silos (many tools)", CategorySilos},
	}
}
