package recompute

import (
	"testing"

	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/measure"
	"github.com/kilianp07/macc/infra/store"
)

func engine() measure.Engine {
	return measure.Engine{Years: []int{2025, 2030, 2035, 2040, 2045, 2050}, BaseYear: 2025, UnitScale: 1e7}
}

func catalogs(coalEF float64) catalog.Resolved {
	return catalog.Set{
		Fuel: []catalog.Row{{Name: "Coal", Unit: "t", PricePerUnit: 5000, EFPerUnit: coalEF}},
	}.Index()
}

func draft() measure.Draft {
	v := func(f float64) *float64 { return &f }
	d := measure.NewDraft(6)
	d.Name = "coal switch"
	d.Sector = "cement"
	d.Fuel[0].CatalogKey = "Coal"
	d.Fuel[0].Delta = []*float64{nil, v(1000), v(1000), v(1000), v(1000), v(1000)}
	d.Adoption = []float64{0, 1, 1, 1, 1, 1}
	return d
}

func TestRunRefreshesTemplateMeasures(t *testing.T) {
	st := store.NewMemoryStore()
	eng := engine()
	d := draft()
	comp := eng.Compute(d, catalogs(2.5), 10, 0)
	m := measure.Freeze(d, comp, false, 0)
	m.Selected = false
	if err := st.Save(m); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Save(measure.Quick("direct entry", "power", 100, 5)); err != nil {
		t.Fatalf("save quick: %v", err)
	}

	// catalog EF changed since the measure was saved
	res, err := Run(st, eng, catalogs(3.0), 10, 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Recomputed != 1 || res.Skipped != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	got, ok, err := st.Get(m.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.AbatementTCO2 != 3000 {
		t.Fatalf("expected refreshed abatement 3000, got %v", got.AbatementTCO2)
	}
	if got.Selected {
		t.Fatal("selection state must survive recompute")
	}
}

func TestRunIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	eng := engine()
	d := draft()
	comp := eng.Compute(d, catalogs(2.5), 10, 0)
	if err := st.Save(measure.Freeze(d, comp, false, 0)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := Run(st, eng, catalogs(2.5), 10, 0); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := st.List()
	if _, err := Run(st, eng, catalogs(2.5), 10, 0); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := st.List()
	if first[0].AbatementTCO2 != second[0].AbatementTCO2 || first[0].CostPerTCO2 != second[0].CostPerTCO2 {
		t.Fatal("recompute with identical inputs diverged")
	}
}
