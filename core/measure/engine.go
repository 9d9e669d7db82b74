package measure

import (
	"math"

	"github.com/kilianp07/macc/core/catalog"
	"github.com/kilianp07/macc/core/numeric"
)

// fallbackYear is the representative year used when no modeled year
// shows positive abatement and the year grid contains it.
const fallbackYear = 2035

// Engine evaluates measure drafts over a configured year grid. The grid,
// base year and currency unit scale are deployment configuration, not
// engine policy; UnitScale is the number of base-currency units in one
// stack unit (e.g. 1e7 for amounts entered in crore).
type Engine struct {
	Years     []int
	BaseYear  int
	UnitScale float64
}

// Compute evaluates a draft against resolved catalogs and returns the
// per-year series, representative index and finance summary. It never
// returns an error: degenerate inputs produce zeroed or nil fields and
// no NaN or Inf ever reaches the output.
func (e Engine) Compute(d Draft, cat catalog.Resolved, discountRatePct, carbonPrice float64) Computation {
	n := len(e.Years)
	scale := e.UnitScale
	if scale <= 0 {
		scale = 1
	}

	perYear := make([]YearResult, n)
	cashNoCP := make([]float64, n)
	cashWithCP := make([]float64, n)
	var totalNo, totalWith, posTons float64

	for i, year := range e.Years {
		since := year - e.BaseYear
		if since < 0 {
			since = 0
		}
		adoption := clamp01(valueAt(d.Adoption, i))

		var tons, driverCost float64
		for _, c := range catalog.Categories {
			for _, line := range d.lines(c) {
				row, _ := cat.Lookup(c, line.CatalogKey)
				price := orDefault(line.PriceOverride, row.PricePerUnit)
				ef := orDefault(line.EFOverride, row.EFPerUnit)
				t, cost := driverYear(price, ef, line.PriceDriftPct, line.EFDriftPct, since, adoption, ptrAt(line.Delta, i), nil)
				tons += t
				driverCost += cost
			}
		}
		for _, line := range d.Electricity {
			row, _ := cat.ElectricityFor(line.State)
			price := orDefault(line.PriceOverride, row.PricePerMWh)
			ef := orDefault(line.EFOverride, row.EFPerMWh)
			t, cost := driverYear(price, ef, line.PriceDriftPct, line.EFDriftPct, since, adoption, ptrAt(line.DeltaMWh, i), ptrAt(line.EFOverridePerYear, i))
			tons += t
			driverCost += cost
		}

		// other-direct is already expressed as a reduction while driver
		// terms keep their quantity*EF sign. The asymmetry is load-bearing
		// for representative-year selection and curve filtering.
		direct := tons + adoption*deref(ptrAt(d.OtherDirect, i))

		// driver costs accrue in base currency, the stack in large units
		driverCost /= scale

		financed := 0.0
		capexFin := valueAt(d.Stack.CapexFinanced, i)
		rate := valueAt(d.Stack.InterestRatePct, i)
		tenure := intAt(d.Stack.FinancingTenure, i)
		if capexFin > 0 && rate > 0 && tenure > 0 {
			financed = capexFin * numeric.AnnuityFactor(rate/100, tenure)
		}

		opex := valueAt(d.Stack.Opex, i)
		savings := valueAt(d.Stack.Savings, i)
		other := valueAt(d.Stack.OtherRecurring, i)
		upfront := valueAt(d.Stack.CapexUpfront, i)

		netCost := (driverCost + opex + other - savings) + financed
		cfNo := (savings - opex - driverCost - other - financed - upfront) * scale
		cfWith := cfNo + carbonPrice*direct

		costNo, costWith := 0.0, 0.0
		if direct > 0 {
			costNo = netCost * scale / direct
			costWith = (netCost*scale - carbonPrice*direct) / direct
		}

		perYear[i] = YearResult{
			Year:             year,
			Adoption:         adoption,
			DirectTons:       finite(direct),
			DriverCost:       finite(driverCost),
			FinancedAnnual:   finite(financed),
			NetCost:          finite(netCost),
			CashflowNoCP:     finite(cfNo),
			CashflowWithCP:   finite(cfWith),
			CostPerTonNoCP:   finite(costNo),
			CostPerTonWithCP: finite(costWith),
		}
		cashNoCP[i] = perYear[i].CashflowNoCP
		cashWithCP[i] = perYear[i].CashflowWithCP

		// lifetime totals include upfront capex alongside the yearly net
		// cost, matching the cashflow series
		yearTotal := (perYear[i].NetCost + upfront) * scale
		totalNo += yearTotal
		totalWith += yearTotal - carbonPrice*perYear[i].DirectTons
		if perYear[i].DirectTons > 0 {
			posTons += perYear[i].DirectTons
		}
	}

	avgNo, avgWith := 0.0, 0.0
	if posTons > 0 {
		avgNo = totalNo / posTons
		avgWith = totalWith / posTons
	}

	rate := discountRatePct / 100
	return Computation{
		PerYear:             perYear,
		RepresentativeIndex: e.representativeIndex(perYear),
		Finance: FinanceSummary{
			NPVNoCP:             finite(numeric.NPV(rate, cashNoCP, e.Years, e.BaseYear)),
			NPVWithCP:           finite(numeric.NPV(rate, cashWithCP, e.Years, e.BaseYear)),
			IRRNoCP:             numeric.IRR(cashNoCP, e.Years, e.BaseYear),
			IRRWithCP:           numeric.IRR(cashWithCP, e.Years, e.BaseYear),
			AvgCostPerTonNoCP:   finite(avgNo),
			AvgCostPerTonWithCP: finite(avgWith),
		},
	}
}

// driverYear evaluates one driver line for one year. efPin, when
// non-nil, replaces the drifted emission factor verbatim (electricity's
// per-year override).
func driverYear(price, ef, priceDrift, efDrift float64, since int, adoption float64, delta, efPin *float64) (tons, cost float64) {
	effPrice := price * math.Pow(1+priceDrift/100, float64(since))
	effEF := ef * math.Pow(1+efDrift/100, float64(since))
	if efPin != nil {
		effEF = *efPin
	}
	qty := adoption * deref(delta)
	return qty * effEF, qty * effPrice
}

// representativeIndex picks the first year with positive abatement, then
// the fallback year's index when present, then the middle of the grid.
func (e Engine) representativeIndex(perYear []YearResult) int {
	for i, y := range perYear {
		if y.DirectTons > 0 {
			return i
		}
	}
	for i, y := range e.Years {
		if y == fallbackYear {
			return i
		}
	}
	return len(e.Years) / 2
}

// lines returns the draft's driver lines for a non-electric category.
func (d Draft) lines(c catalog.Category) []DriverLine {
	switch c {
	case catalog.Fuel:
		return d.Fuel
	case catalog.Raw:
		return d.Raw
	case catalog.Transport:
		return d.Transport
	case catalog.Waste:
		return d.Waste
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func valueAt(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func intAt(s []int, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func ptrAt(s []*float64, i int) *float64 {
	if i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// finite replaces NaN and Inf with 0 so they never reach saved data.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
