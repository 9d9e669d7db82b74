package catalog

import "testing"

func sampleSet() Set {
	return Set{
		Fuel: []Row{
			{Name: "Coal", Unit: "t", PricePerUnit: 100, EFPerUnit: 2.5},
			{Name: "Diesel", Unit: "kl", PricePerUnit: 900, EFPerUnit: 2.7},
		},
		Electricity: []ElectricityRow{
			{State: "Maharashtra", PricePerMWh: 7000, EFPerMWh: 0.82},
		},
	}
}

func TestResolveMergedOverride(t *testing.T) {
	custom := Set{Fuel: []Row{
		{Name: "coal", Unit: "t", PricePerUnit: 150, EFPerUnit: 2.4},
		{Name: "Biomass", Unit: "t", PricePerUnit: 60, EFPerUnit: 0.1},
	}}
	got := Resolve(sampleSet(), custom, ModeMerged)
	if len(got.Fuel) != 3 {
		t.Fatalf("expected 3 fuel rows, got %d", len(got.Fuel))
	}
	if got.Fuel[0].PricePerUnit != 150 {
		t.Fatalf("coal price not overridden: %v", got.Fuel[0])
	}
	if got.Fuel[1].Name != "Diesel" || got.Fuel[1].PricePerUnit != 900 {
		t.Fatalf("sample-only row modified: %v", got.Fuel[1])
	}
	if got.Fuel[2].Name != "Biomass" {
		t.Fatalf("custom-only row not appended: %v", got.Fuel[2])
	}
}

func TestResolveVerbatimModes(t *testing.T) {
	sample := sampleSet()
	custom := Set{Fuel: []Row{{Name: "Coke", PricePerUnit: 200}}}
	if got := Resolve(sample, custom, ModeSample); len(got.Fuel) != 2 {
		t.Fatalf("sample mode altered catalogs: %#v", got.Fuel)
	}
	if got := Resolve(sample, custom, ModeCustom); len(got.Fuel) != 1 || got.Fuel[0].Name != "Coke" {
		t.Fatalf("custom mode altered catalogs: %#v", got.Fuel)
	}
}

func TestResolveEmptyCatalogs(t *testing.T) {
	got := Resolve(Set{}, Set{}, ModeMerged)
	if len(got.Fuel) != 0 || len(got.Electricity) != 0 {
		t.Fatalf("empty merge should stay empty: %#v", got)
	}
}

func TestIndexLookup(t *testing.T) {
	r := sampleSet().Index()
	row, ok := r.Lookup(Fuel, "COAL")
	if !ok || row.PricePerUnit != 100 {
		t.Fatalf("case-insensitive lookup failed: %v %v", row, ok)
	}
	if _, ok := r.Lookup(Fuel, "unknown"); ok {
		t.Fatal("unknown key should not resolve")
	}
	el, ok := r.ElectricityFor("maharashtra")
	if !ok || el.EFPerMWh != 0.82 {
		t.Fatalf("electricity lookup failed: %v %v", el, ok)
	}
}
