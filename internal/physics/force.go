package physics

import (
	"math"

	"github.com/san-kum/ballistic/internal/drag"
)

// Force is the drag evaluation at one velocity together with the resulting
// acceleration.
type Force struct {
	Speed float64
	Re    float64
	Cd    float64
	Drag  float64
	AX    float64
	AY    float64
}

// Accelerate evaluates drag and gravity at velocity (vx, vy). Drag acts
// opposite the velocity vector. At zero speed no drag term is evaluated and
// the result is pure gravity.
func Accelerate(vx, vy float64, p Params) Force {
	v := math.Sqrt(vx*vx + vy*vy)
	if v == 0 {
		return Force{AY: -p.Gravity}
	}

	re := drag.Reynolds(v, p.Diameter, p.FluidDensity, p.Viscosity)
	cd := drag.Coefficient(re)
	fd := 0.5 * cd * p.FluidDensity * p.Area() * v * v

	return Force{
		Speed: v,
		Re:    re,
		Cd:    cd,
		Drag:  fd,
		AX:    -fd * vx / (p.Mass * v),
		AY:    -p.Gravity - fd*vy/(p.Mass*v),
	}
}
