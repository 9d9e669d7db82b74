package numeric

import (
	"math"
	"testing"
)

func TestQuadFitExact(t *testing.T) {
	// y = 2 + 3x - x^2, no noise
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2 + 3*x - x*x
	}
	res := QuadFit(xs, ys)
	if math.Abs(res.A-2) > 1e-9 || math.Abs(res.B-3) > 1e-9 || math.Abs(res.C+1) > 1e-9 {
		t.Fatalf("coefficients off: a=%v b=%v c=%v", res.A, res.B, res.C)
	}
	if res.R2 == nil || math.Abs(*res.R2-1) > 1e-9 {
		t.Fatalf("expected R2 ~ 1, got %v", res.R2)
	}
}

func TestQuadFitTooFewPoints(t *testing.T) {
	res := QuadFit([]float64{1, 2}, []float64{3, 4})
	if res.A != 0 || res.B != 0 || res.C != 0 || res.R2 != nil {
		t.Fatalf("expected degenerate result, got %+v", res)
	}
}

func TestQuadFitSingular(t *testing.T) {
	// identical x values make the normal equations singular
	res := QuadFit([]float64{1, 1, 1, 1}, []float64{1, 2, 3, 4})
	if res.A != 0 || res.B != 0 || res.C != 0 || res.R2 != nil {
		t.Fatalf("expected degenerate result, got %+v", res)
	}
}

func TestQuadFitFlatY(t *testing.T) {
	res := QuadFit([]float64{0, 1, 2, 3}, []float64{5, 5, 5, 5})
	if res.R2 != nil {
		t.Fatalf("R2 must be nil when y has no variance, got %v", *res.R2)
	}
}
