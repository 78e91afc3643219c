package flight

import (
	"errors"

	"go.uber.org/zap"

	"github.com/san-kum/ballistic/internal/integrators"
	"github.com/san-kum/ballistic/internal/physics"
)

type Simulator struct {
	integrator *integrators.SemiImplicitEuler
	logger     *zap.Logger
}

type Option func(*Simulator)

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		integrator: integrators.NewSemiImplicitEuler(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run integrates one trajectory. Invalid input is rejected before the first
// step. The loop stops once y < 0 or t > cfg.MaxTime. A NaN height is never
// below ground, so a non-finite state runs into the time budget.
func (s *Simulator) Run(p physics.Params, cfg Config) (*Trajectory, error) {
	if err := errors.Join(p.Validate(), cfg.Validate()); err != nil {
		return nil, err
	}

	dt := cfg.TimeStep
	x := InitialState(p)

	tr := &Trajectory{
		Params:  p,
		Config:  cfg,
		Initial: x,
		Samples: make([]Sample, 0, expectedSteps(cfg)),
	}

	s.logger.Debug("run started",
		zap.String("label", p.Label()),
		zap.Float64("dt", dt),
		zap.Float64("max_time", cfg.MaxTime),
	)

	for !(x.Y < 0) && x.T <= cfg.MaxTime {
		f := physics.Accelerate(x.VX, x.VY, p)

		k := s.integrator.Step(integrators.Kinematics{VX: x.VX, VY: x.VY, X: x.X, Y: x.Y}, f.AX, f.AY, dt)
		x.VX, x.VY, x.X, x.Y = k.VX, k.VY, k.X, k.Y

		tr.Samples = append(tr.Samples, Sample{
			T:  x.T,
			V:  f.Speed,
			Re: f.Re,
			C:  f.Cd,
			VX: x.VX,
			VY: x.VY,
			X:  x.X,
			Y:  x.Y,
		})

		x.T += dt
	}

	if x.Y < 0 {
		tr.Termination = Impact
	} else {
		tr.Termination = TimeBudget
	}

	s.logger.Debug("run finished",
		zap.Stringer("termination", tr.Termination),
		zap.Int("samples", len(tr.Samples)),
		zap.Float64("t", x.T),
		zap.Float64("x", x.X),
	)

	return tr, nil
}

const maxPrealloc = 1 << 16

func expectedSteps(cfg Config) int {
	n := cfg.MaxTime/cfg.TimeStep + 1
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
