package integrators

// Kinematics is the planar velocity and position advanced by one step.
type Kinematics struct {
	VX, VY float64
	X, Y   float64
}

// SemiImplicitEuler is the symplectic Euler scheme: velocity is advanced
// first and the updated velocity moves the position within the same step.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(k Kinematics, ax, ay, dt float64) Kinematics {
	k.VX += ax * dt
	k.VY += ay * dt
	k.X += k.VX * dt
	k.Y += k.VY * dt
	return k
}
