package recompute

import (
	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/measure"
)

// Result summarises one recomputation pass.
type Result struct {
	Recomputed int
	Skipped    int
}

// Run re-evaluates every stored template measure against the current
// catalogs and economic parameters and persists the refreshed records.
// Quick measures and records without saved drivers are skipped. Identity
// and selection state survive the refresh; the carbon-price provenance is
// updated to the price used here.
func Run(st measure.Store, eng measure.Engine, cat catalog.Resolved, discountRatePct, carbonPrice float64) (Result, error) {
	ms, err := st.List()
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, m := range ms {
		draft, ok := m.Reconstruct()
		if !ok {
			res.Skipped++
			continue
		}
		comp := eng.Compute(draft, cat, discountRatePct, carbonPrice)
		fresh := measure.Freeze(draft, comp, m.Details.SavedCostIncludesCarbonPrice, carbonPrice)
		fresh.ID = m.ID
		fresh.Selected = m.Selected
		if err := st.Save(fresh); err != nil {
			return res, err
		}
		res.Recomputed++
	}
	return res, nil
}
