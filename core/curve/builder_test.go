package curve

import (
	"math"
	"testing"
)

func rankedFixture() []Ranked {
	mk := func(name string, tons, cost float64) Ranked {
		m := saved(name, cost, false, 0)
		m.AbatementTCO2 = tons
		return Ranked{Measure: m, EffectiveCost: cost}
	}
	return []Ranked{
		mk("a", 100, -50),
		mk("b", 250, 10),
		mk("c", 150, 200),
	}
}

func TestBuildMonotonicSegments(t *testing.T) {
	c := Build(rankedFixture(), Capacity, 0)
	if len(c.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(c.Segments))
	}
	if c.Segments[0].X1 != 0 {
		t.Fatalf("first segment must start at 0, got %v", c.Segments[0].X1)
	}
	for i := 1; i < len(c.Segments); i++ {
		if c.Segments[i].X1 != c.Segments[i-1].X2 {
			t.Fatalf("gap between segments %d and %d", i-1, i)
		}
		if c.Segments[i].X2 < c.Segments[i-1].X2 {
			t.Fatal("x2 sequence must be non-decreasing")
		}
	}
	if c.TotalAbatement != 500 {
		t.Fatalf("expected total 500, got %v", c.TotalAbatement)
	}
}

func TestBuildSkipsNonPositive(t *testing.T) {
	in := rankedFixture()
	zero := saved("zero", 5, false, 0)
	zero.AbatementTCO2 = 0
	nan := saved("nan", 5, false, 0)
	nan.AbatementTCO2 = math.NaN()
	in = append(in, Ranked{Measure: zero, EffectiveCost: 5}, Ranked{Measure: nan, EffectiveCost: 5})
	c := Build(in, Capacity, 0)
	if len(c.Segments) != 3 {
		t.Fatalf("degenerate measures must be skipped, got %d segments", len(c.Segments))
	}
}

func TestBuildIntensityAxis(t *testing.T) {
	c := Build(rankedFixture(), Intensity, 1000)
	if math.Abs(c.Segments[0].X2-10) > 1e-9 {
		t.Fatalf("100 t of a 1000 t baseline is 10%%, got %v", c.Segments[0].X2)
	}
	if math.Abs(c.TotalAbatement-50) > 1e-9 {
		t.Fatalf("expected 50%%, got %v", c.TotalAbatement)
	}
	flat := Build(rankedFixture(), Intensity, 0)
	for _, s := range flat.Segments {
		if s.X1 != 0 || s.X2 != 0 {
			t.Fatal("non-positive baseline must collapse the axis to zero")
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	c := Build(nil, Capacity, 0)
	if len(c.Segments) != 0 || c.TotalAbatement != 0 {
		t.Fatalf("empty input must yield empty curve: %+v", c)
	}
}

func TestBudgetToTargetGreedy(t *testing.T) {
	// target 30% of 1000 t = 300 t: all of a (100 @ -50), then 200 of b (@ 10)
	res := BudgetToTarget(rankedFixture(), 1000, 30)
	if res.TargetTons != 300 {
		t.Fatalf("expected target 300, got %v", res.TargetTons)
	}
	if res.ReachedTons != 300 {
		t.Fatalf("expected reached 300, got %v", res.ReachedTons)
	}
	wantBudget := 100*-50 + 200*10.0
	if math.Abs(res.Budget-wantBudget) > 1e-9 {
		t.Fatalf("expected budget %v, got %v", wantBudget, res.Budget)
	}
	if math.Abs(res.ReachedPct-30) > 1e-9 {
		t.Fatalf("expected 30%%, got %v", res.ReachedPct)
	}
}

func TestBudgetToTargetCappedAtMaximum(t *testing.T) {
	res := BudgetToTarget(rankedFixture(), 1000, 90)
	if res.ReachedTons != 500 {
		t.Fatalf("reached must cap at total potential 500, got %v", res.ReachedTons)
	}
	if math.Abs(res.ReachedPct-50) > 1e-9 {
		t.Fatalf("expected 50%%, got %v", res.ReachedPct)
	}
}

func TestFitTrendOverlay(t *testing.T) {
	c := Build(rankedFixture(), Capacity, 0)
	res := FitTrend(c.Segments)
	if res.R2 == nil {
		t.Fatal("three segments should produce a fit")
	}
	if FitTrend(c.Segments[:2]).R2 != nil {
		t.Fatal("two segments cannot support a quadratic fit")
	}
}
