package numeric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// detEps bounds the normal-equation determinant below which the system is
// treated as singular.
const detEps = 1e-12

// QuadFitResult holds the coefficients of y = A + B*x + C*x^2.
// R2 is nil when the fit is degenerate or the y values carry no variance.
type QuadFitResult struct {
	A, B, C float64
	R2      *float64
}

// QuadFit fits a quadratic by least squares, solving the 3x3 normal
// equations built from power sums with Cramer's rule. Fewer than three
// points or a near-singular system return zero coefficients and nil R2
// rather than attempting an ill-conditioned inversion.
func QuadFit(xs, ys []float64) QuadFitResult {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 3 {
		return QuadFitResult{}
	}
	var sx, sx2, sx3, sx4, sy, sxy, sx2y float64
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		x2 := x * x
		sx += x
		sx2 += x2
		sx3 += x2 * x
		sx4 += x2 * x2
		sy += y
		sxy += x * y
		sx2y += x2 * y
	}
	m := mat.NewDense(3, 3, []float64{
		float64(n), sx, sx2,
		sx, sx2, sx3,
		sx2, sx3, sx4,
	})
	det := mat.Det(m)
	if math.Abs(det) < detEps {
		return QuadFitResult{}
	}
	rhs := []float64{sy, sxy, sx2y}
	a := mat.Det(withColumn(m, 0, rhs)) / det
	b := mat.Det(withColumn(m, 1, rhs)) / det
	c := mat.Det(withColumn(m, 2, rhs)) / det

	res := QuadFitResult{A: a, B: b, C: c}
	mean := sy / float64(n)
	var sse, sst float64
	for i := 0; i < n; i++ {
		fit := a + b*xs[i] + c*xs[i]*xs[i]
		sse += (ys[i] - fit) * (ys[i] - fit)
		sst += (ys[i] - mean) * (ys[i] - mean)
	}
	if sst != 0 {
		r2 := 1 - sse/sst
		res.R2 = &r2
	}
	return res
}

func withColumn(m *mat.Dense, col int, v []float64) *mat.Dense {
	out := mat.DenseCopyOf(m)
	for i, val := range v {
		out.Set(i, col, val)
	}
	return out
}
