// Package numeric provides the pure numeric primitives shared by the
// measure engine and the curve builder: quadratic least-squares fitting,
// gap interpolation over sparse year series, net present value, bisection
// IRR and loan annuity factors. All functions are stateless and degrade
// to safe zero or nil results on degenerate inputs instead of failing.
package numeric
