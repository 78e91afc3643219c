// Package drag implements the empirical sphere drag correlation used by the
// force model: a Reynolds number and a three-regime drag coefficient.
package drag

import "math"

const (
	// StokesLimit is the Reynolds number below which creeping flow applies.
	StokesLimit = 0.1
	// NewtonLimit is the Reynolds number at and above which drag is constant.
	NewtonLimit = 1000.0
	// SphereNewtonCd is the Newtonian-regime drag coefficient of a sphere.
	SphereNewtonCd = 0.47
)

type Regime int

const (
	Stokes Regime = iota
	Transitional
	Newtonian
)

func (r Regime) String() string {
	switch r {
	case Stokes:
		return "stokes"
	case Transitional:
		return "transitional"
	case Newtonian:
		return "newtonian"
	}
	return "unknown"
}

// Reynolds returns rho*v*d/mu.
func Reynolds(v, d, rho, mu float64) float64 {
	return rho * v * d / mu
}

// Classify maps a Reynolds number to its drag regime. NaN falls through to
// Newtonian since both threshold comparisons are false.
func Classify(re float64) Regime {
	switch {
	case re < StokesLimit:
		return Stokes
	case re < NewtonLimit:
		return Transitional
	default:
		return Newtonian
	}
}

// Coefficient returns the drag coefficient for re. The correlation is not
// blended at the breakpoints. Coefficient(0) is +Inf; callers handle zero
// speed themselves.
func Coefficient(re float64) float64 {
	switch Classify(re) {
	case Stokes:
		return 24 / re
	case Transitional:
		return 24 / math.Pow(re, 0.6)
	default:
		return SphereNewtonCd
	}
}
