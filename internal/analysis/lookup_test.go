package analysis

import "testing"

func TestLookup_Resolve(t *testing.T) {
	l := DefaultLookup()

	tests := []struct {
		dim       Dimension
		text      string
		want      CategoryKey
		wantFound bool
	}{
		{DimensionIndustry, "Produktion / Logistik", CategoryProduction, true},
		{DimensionIndustry, "Production / Logistics", CategoryProduction, true},
		{DimensionIndustry, "SaaS / Tech", CategorySaaS, true},
		{DimensionIndustry, "Service / Agency", CategoryAgency, true},
		{DimensionIndustry, "Handel / E-Commerce", CategoryRetail, true},
		{DimensionIndustry, "produktion / logistik", CategoryAgency, false},
		{DimensionIndustry, "", CategoryAgency, false},
		{DimensionPain, "Fachkräftemangel / Zeit", CategoryTime, true},
		{DimensionPain, "Lack of data transparency", CategoryTransparency, true},
		{DimensionPain, "Effizienz", CategoryTime, false},
		{DimensionData, "Chaos / Excel", CategoryChaos, true},
		{DimensionData, "Silos (viele Tools)", CategorySilos, true},
		{DimensionData, "Data Warehouse exists", CategoryWarehouse, true},
		{DimensionData, "Chaos", CategoryChaos, false},
		// Text of one dimension does not leak into another.
		{DimensionPain, "SaaS / Tech", CategoryTime, false},
	}

	for _, tt := range tests {
		got, found := l.Resolve(tt.dim, tt.text)
		if got != tt.want || found != tt.wantFound {
			t.Errorf("Resolve(%s, %q) = (%q, %v), want (%q, %v)",
				tt.dim, tt.text, got, found, tt.want, tt.wantFound)
		}
	}
}

func TestLookup_NilIsUsable(t *testing.T) {
	var l *Lookup
	got, found := l.Resolve(DimensionData, "Chaos / Excel")
	if found || got != CategoryChaos {
		t.Errorf("nil lookup Resolve = (%q, %v), want default", got, found)
	}
	if l.Len(DimensionData) != 0 {
		t.Error("nil lookup should be empty")
	}
}

func TestLookup_AddSkipsIncompleteEntries(t *testing.T) {
	l := NewLookup(
		Entry{Dimension: DimensionPain, Text: "", Category: CategoryCosts},
		Entry{Dimension: DimensionPain, Text: "Kosten", Category: ""},
		Entry{Dimension: DimensionPain, Text: "Kosten", Category: CategoryCosts},
	)
	if l.Len(DimensionPain) != 1 {
		t.Errorf("expected 1 entry, got %d", l.Len(DimensionPain))
	}
}

func TestDefaultCategory(t *testing.T) {
	tests := map[Dimension]CategoryKey{
		DimensionIndustry: CategoryAgency,
		DimensionPain:     CategoryTime,
		DimensionData:     CategoryChaos,
	}
	for d, want := range tests {
		if got := DefaultCategory(d); got != want {
			t.Errorf("DefaultCategory(%s) = %q, want %q", d, got, want)
		}
	}
}

func TestDefaultLookup_EveryCategoryReachable(t *testing.T) {
	l := DefaultLookup()
	for _, d := range AllDimensions() {
		reached := make(map[CategoryKey]bool)
		for _, m := range l.tables[d] {
			reached[m] = true
		}
		for _, c := range Categories(d) {
			if !reached[c] {
				t.Errorf("category %s/%s has no lookup entry", d, c)
			}
		}
	}
}
