package curve

import (
	"sort"

	"github.com/kilianp07/macc/core/measure"
)

// EffectiveCost converts a measure's stored cost per ton into the cost
// at the current carbon price. A cost saved with an embedded carbon
// price is adjusted by the price delta since save; a cost saved without
// has the full current price removed. Quick measures store their cost
// without a carbon price unless flagged otherwise.
func EffectiveCost(m measure.Measure, carbonPrice float64) float64 {
	if m.Details.SavedCostIncludesCarbonPrice {
		return m.CostPerTCO2 - (carbonPrice - m.Details.CarbonPriceAtSave)
	}
	return m.CostPerTCO2 - carbonPrice
}

// Ranked pairs a measure with its effective cost for curve construction.
type Ranked struct {
	Measure       measure.Measure
	EffectiveCost float64
}

// Rank filters to selected measures in the given sector (empty means all
// sectors) and orders them ascending by effective cost. The sort is
// stable, so ranking the same input repeatedly is idempotent and ties
// keep their input order.
func Rank(ms []measure.Measure, sector string, carbonPrice float64) []Ranked {
	var out []Ranked
	for _, m := range ms {
		if !m.Selected {
			continue
		}
		if sector != "" && m.Sector != sector {
			continue
		}
		out = append(out, Ranked{Measure: m, EffectiveCost: EffectiveCost(m, carbonPrice)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EffectiveCost < out[j].EffectiveCost })
	return out
}
