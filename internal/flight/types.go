package flight

import (
	"fmt"
	"math"

	"github.com/san-kum/ballistic/internal/physics"
)

const (
	DefaultTimeStep = 0.001
	DefaultMaxTime  = 10.0
)

type Config struct {
	TimeStep float64 `yaml:"time_step" json:"time_step"`
	MaxTime  float64 `yaml:"max_time" json:"max_time"`
}

func DefaultConfig() Config {
	return Config{
		TimeStep: DefaultTimeStep,
		MaxTime:  DefaultMaxTime,
	}
}

func (c Config) Validate() error {
	if !(c.TimeStep > 0) || math.IsInf(c.TimeStep, 0) {
		return fmt.Errorf("%w: time step must be positive and finite, got %v", ErrInvalidConfig, c.TimeStep)
	}
	if !(c.MaxTime > 0) || math.IsInf(c.MaxTime, 0) {
		return fmt.Errorf("%w: max time must be positive and finite, got %v", ErrInvalidConfig, c.MaxTime)
	}
	return nil
}

// State is the kinematic state owned by a run.
type State struct {
	T      float64
	VX, VY float64
	X, Y   float64
}

// InitialState places the projectile at the origin with the launch velocity.
func InitialState(p physics.Params) State {
	vx, vy := p.Launch()
	return State{VX: vx, VY: vy}
}

// Sample is recorded once per step. V, Re and C describe the velocity the
// step started from; VX, VY, X and Y are the values after the step.
type Sample struct {
	T  float64 `json:"t"`
	V  float64 `json:"v"`
	Re float64 `json:"re"`
	C  float64 `json:"cd"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Speed is the post-step speed magnitude.
func (s Sample) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

type Termination int

const (
	// Impact means the projectile crossed the ground plane.
	Impact Termination = iota
	// TimeBudget means the run exceeded its maximum time.
	TimeBudget
)

func (t Termination) String() string {
	switch t {
	case Impact:
		return "impact"
	case TimeBudget:
		return "time_budget"
	}
	return "unknown"
}

func (t Termination) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type Trajectory struct {
	Params      physics.Params
	Config      Config
	Initial     State
	Samples     []Sample
	Termination Termination
}

func (tr *Trajectory) Len() int { return len(tr.Samples) }

// Last returns the final sample. ok is false for an empty trajectory.
func (tr *Trajectory) Last() (s Sample, ok bool) {
	if len(tr.Samples) == 0 {
		return Sample{}, false
	}
	return tr.Samples[len(tr.Samples)-1], true
}

// Path returns the x and y coordinates of the initial state followed by
// every sample.
func (tr *Trajectory) Path() (xs, ys []float64) {
	xs = make([]float64, 0, len(tr.Samples)+1)
	ys = make([]float64, 0, len(tr.Samples)+1)
	xs = append(xs, tr.Initial.X)
	ys = append(ys, tr.Initial.Y)
	for _, s := range tr.Samples {
		xs = append(xs, s.X)
		ys = append(ys, s.Y)
	}
	return xs, ys
}
