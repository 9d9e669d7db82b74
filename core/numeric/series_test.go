package numeric

import "testing"

func f(v float64) *float64 { return &v }

func TestInterpolateInteriorGaps(t *testing.T) {
	in := []*float64{f(5), nil, nil, f(20), nil}
	out := Interpolate(in)
	want := []*float64{f(5), f(10), f(15), f(20), nil}
	for i := range want {
		switch {
		case want[i] == nil:
			if out[i] != nil {
				t.Fatalf("index %d: trailing blank was filled with %v", i, *out[i])
			}
		case out[i] == nil:
			t.Fatalf("index %d: expected %v, got blank", i, *want[i])
		case *out[i] != *want[i]:
			t.Fatalf("index %d: expected %v, got %v", i, *want[i], *out[i])
		}
	}
}

func TestInterpolateLeadingBlanks(t *testing.T) {
	out := Interpolate([]*float64{nil, nil, f(3), f(6)})
	if out[0] != nil || out[1] != nil {
		t.Fatal("leading blanks must not be extrapolated")
	}
}

func TestInterpolateInputUntouched(t *testing.T) {
	in := []*float64{f(1), nil, f(3)}
	Interpolate(in)
	if in[1] != nil {
		t.Fatal("input slice was modified")
	}
}
