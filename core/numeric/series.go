package numeric

// Interpolate fills interior gaps in a sparse series by linear
// interpolation between the nearest filled neighbours. A nil entry means
// blank. Leading and trailing blanks are left unchanged, never
// extrapolated. The input slice is not modified.
func Interpolate(vals []*float64) []*float64 {
	out := make([]*float64, len(vals))
	copy(out, vals)
	prev := -1
	for i, v := range vals {
		if v == nil {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			step := (*vals[i] - *vals[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				f := *vals[prev] + step*float64(j-prev)
				out[j] = &f
			}
		}
		prev = i
	}
	return out
}
