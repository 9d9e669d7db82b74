package curve

import (
	"math"

	"github.com/kilianp07/macc/core/numeric"
)

// Mode selects the x axis of the curve.
type Mode string

const (
	// Capacity plots cumulative abatement in tCO2.
	Capacity Mode = "capacity"
	// Intensity plots cumulative abatement as a percentage of the
	// baseline emissions.
	Intensity Mode = "intensity"
)

// Segment is one measure's span on the cost curve. X1 and X2 are in the
// axis unit of the curve's mode; Tons always carries the raw abatement.
type Segment struct {
	MeasureID string  `json:"measure_id"`
	Name      string  `json:"name"`
	X1        float64 `json:"x1"`
	X2        float64 `json:"x2"`
	Cost      float64 `json:"cost"`
	Tons      float64 `json:"tons"`
}

// Curve is the chart-ready output of a build.
type Curve struct {
	Mode           Mode      `json:"mode"`
	Segments       []Segment `json:"segments"`
	TotalAbatement float64   `json:"total_abatement"`
}

// Build walks ranked measures in order, accumulating abatement into
// adjacent segments. Measures with non-finite or non-positive abatement
// are skipped. In intensity mode a non-positive baseline collapses the
// axis to zero.
func Build(ranked []Ranked, mode Mode, baseline float64) Curve {
	toAxis := func(tons float64) float64 {
		if mode != Intensity {
			return tons
		}
		if baseline <= 0 {
			return 0
		}
		return tons / baseline * 100
	}

	var cum float64
	var segs []Segment
	for _, r := range ranked {
		tons := r.Measure.AbatementTCO2
		if math.IsNaN(tons) || math.IsInf(tons, 0) || tons <= 0 {
			continue
		}
		x1, x2 := cum, cum+tons
		cum = x2
		segs = append(segs, Segment{
			MeasureID: r.Measure.ID,
			Name:      r.Measure.Name,
			X1:        toAxis(x1),
			X2:        toAxis(x2),
			Cost:      r.EffectiveCost,
			Tons:      tons,
		})
	}
	total := 0.0
	if len(segs) > 0 {
		total = segs[len(segs)-1].X2
	}
	return Curve{Mode: mode, Segments: segs, TotalAbatement: total}
}

// BudgetResult reports the outcome of the greedy budget walk.
type BudgetResult struct {
	TargetTons  float64 `json:"target_tons"`
	ReachedTons float64 `json:"reached_tons"`
	ReachedPct  float64 `json:"reached_pct"`
	Budget      float64 `json:"budget"`
}

// BudgetToTarget walks ranked measures cheapest first, taking abatement
// up to the remaining need from each, until the intensity target
// (percent of baseline, converted to tons) is met or measures run out.
// The reached value is capped at the maximum achievable across all
// measures, computed independently of the walk.
func BudgetToTarget(ranked []Ranked, baseline, targetPct float64) BudgetResult {
	target := baseline * targetPct / 100
	if target < 0 || math.IsNaN(target) {
		target = 0
	}

	var max float64
	for _, r := range ranked {
		tons := r.Measure.AbatementTCO2
		if math.IsNaN(tons) || math.IsInf(tons, 0) || tons <= 0 {
			continue
		}
		max += tons
	}

	var taken, budget float64
	for _, r := range ranked {
		if taken >= target {
			break
		}
		tons := r.Measure.AbatementTCO2
		if math.IsNaN(tons) || math.IsInf(tons, 0) || tons <= 0 {
			continue
		}
		take := tons
		if need := target - taken; take > need {
			take = need
		}
		taken += take
		budget += take * r.EffectiveCost
	}

	reached := taken
	if reached > max {
		reached = max
	}
	pct := 0.0
	if baseline > 0 {
		pct = reached / baseline * 100
	}
	return BudgetResult{TargetTons: target, ReachedTons: reached, ReachedPct: pct, Budget: budget}
}

// FitTrend fits a quadratic cost trend across segment midpoints for the
// optional regression overlay. Fewer than three segments produce a
// degenerate fit with nil R2.
func FitTrend(segs []Segment) numeric.QuadFitResult {
	xs := make([]float64, len(segs))
	ys := make([]float64, len(segs))
	for i, s := range segs {
		xs[i] = (s.X1 + s.X2) / 2
		ys[i] = s.Cost
	}
	return numeric.QuadFit(xs, ys)
}
