package numeric

import "math"

// NPV discounts the amounts at rate against their calendar years.
// Years before the base year are clamped to a zero exponent rather than
// compounding backwards.
func NPV(rate float64, amounts []float64, years []int, baseYear int) float64 {
	total := 0.0
	for i, amt := range amounts {
		if i >= len(years) {
			break
		}
		exp := years[i] - baseYear
		if exp < 0 {
			exp = 0
		}
		total += amt / math.Pow(1+rate, float64(exp))
	}
	return total
}

// IRR searches [-0.9, 3.0] for a zero-NPV rate by bisection with a 1e-6
// tolerance and at most 100 iterations. It returns nil when either bound
// evaluates to NaN or both bounds share a sign, i.e. the cashflows do not
// bracket a root.
func IRR(amounts []float64, years []int, baseYear int) *float64 {
	const (
		tol     = 1e-6
		maxIter = 100
	)
	lo, hi := -0.9, 3.0
	flo := NPV(lo, amounts, years, baseYear)
	fhi := NPV(hi, amounts, years, baseYear)
	if math.IsNaN(flo) || math.IsNaN(fhi) {
		return nil
	}
	if flo*fhi > 0 {
		return nil
	}
	mid := (lo + hi) / 2
	for i := 0; i < maxIter; i++ {
		mid = (lo + hi) / 2
		fm := NPV(mid, amounts, years, baseYear)
		if math.Abs(fm) < tol {
			return &mid
		}
		if flo*fm < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fm
		}
	}
	return &mid
}

// AnnuityFactor converts a financed amount into its equivalent yearly
// payment for nominal rate r over n years. Non-positive terms yield 0 and
// a near-zero rate degrades to straight-line repayment.
func AnnuityFactor(r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if math.Abs(r) < 1e-9 {
		return 1 / float64(n)
	}
	pow := math.Pow(1+r, float64(n))
	return r * pow / (pow - 1)
}
