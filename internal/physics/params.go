package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams indicates a parameter set that cannot be simulated.
var ErrInvalidParams = errors.New("physics: invalid simulation parameters")

const (
	DefaultGravity      = 9.81
	DefaultFluidDensity = 1.2257
	DefaultViscosity    = 0.000018
	DefaultDiameter     = 0.01746
	DefaultMass         = 0.0218
	DefaultAngle        = 25.0
	DefaultSpeed        = 5.5
)

// Params describes one launch: the fluid, the sphere and the initial
// conditions. Angle is in degrees.
type Params struct {
	Gravity      float64 `yaml:"gravity" json:"gravity"`
	FluidDensity float64 `yaml:"fluid_density" json:"fluid_density"`
	Viscosity    float64 `yaml:"viscosity" json:"viscosity"`
	Diameter     float64 `yaml:"diameter" json:"diameter"`
	Mass         float64 `yaml:"mass" json:"mass"`
	Angle        float64 `yaml:"angle" json:"angle"`
	Speed        float64 `yaml:"speed" json:"speed"`
}

func DefaultParams() Params {
	return Params{
		Gravity:      DefaultGravity,
		FluidDensity: DefaultFluidDensity,
		Viscosity:    DefaultViscosity,
		Diameter:     DefaultDiameter,
		Mass:         DefaultMass,
		Angle:        DefaultAngle,
		Speed:        DefaultSpeed,
	}
}

// Validate reports every violated constraint at once.
func (p Params) Validate() error {
	var errs []error

	finite := []struct {
		name  string
		value float64
	}{
		{"gravity", p.Gravity},
		{"fluid_density", p.FluidDensity},
		{"viscosity", p.Viscosity},
		{"diameter", p.Diameter},
		{"mass", p.Mass},
		{"angle", p.Angle},
		{"speed", p.Speed},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, f.name, f.value))
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"fluid_density", p.FluidDensity},
		{"viscosity", p.Viscosity},
		{"diameter", p.Diameter},
		{"mass", p.Mass},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParams, f.name, f.value))
		}
	}

	return errors.Join(errs...)
}

// Area is the projected frontal area of the sphere.
func (p Params) Area() float64 {
	r := p.Diameter / 2
	return math.Pi * r * r
}

// Launch returns the initial velocity components.
func (p Params) Launch() (vx, vy float64) {
	rad := p.Angle * math.Pi / 180
	return p.Speed * math.Cos(rad), p.Speed * math.Sin(rad)
}

// Label is the legend text used when several runs are overlaid.
func (p Params) Label() string {
	return fmt.Sprintf("θ=%g° v0=%g m/s D=%g m m=%g kg", p.Angle, p.Speed, p.Diameter, p.Mass)
}
