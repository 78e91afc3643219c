package flight_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/physics"
)

var _ = Describe("Simulator", func() {
	var (
		sim *flight.Simulator
		p   physics.Params
		cfg flight.Config
	)

	BeforeEach(func() {
		sim = flight.New()
		p = physics.DefaultParams()
		cfg = flight.DefaultConfig()
	})

	Describe("input validation", func() {
		It("rejects non-positive physical parameters before stepping", func() {
			p.Diameter = 0
			tr, err := sim.Run(p, cfg)
			Expect(err).To(MatchError(physics.ErrInvalidParams))
			Expect(tr).To(BeNil())
		})

		It("rejects a non-positive time step", func() {
			cfg.TimeStep = 0
			tr, err := sim.Run(p, cfg)
			Expect(err).To(MatchError(flight.ErrInvalidConfig))
			Expect(tr).To(BeNil())
		})

		It("rejects a non-finite time budget", func() {
			cfg.MaxTime = math.Inf(1)
			_, err := sim.Run(p, cfg)
			Expect(err).To(MatchError(flight.ErrInvalidConfig))
		})

		It("reports parameter and config problems together", func() {
			p.Mass = -1
			cfg.TimeStep = -1
			_, err := sim.Run(p, cfg)
			Expect(err).To(MatchError(physics.ErrInvalidParams))
			Expect(err).To(MatchError(flight.ErrInvalidConfig))
		})
	})

	Describe("termination", func() {
		It("ends on impact with the final sample below ground", func() {
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(BeNumerically(">", 0))

			last, ok := tr.Last()
			Expect(ok).To(BeTrue())
			Expect(last.Y).To(BeNumerically("<", 0))
			Expect(tr.Termination).To(Equal(flight.Impact))

			for _, s := range tr.Samples[:tr.Len()-1] {
				Expect(s.Y).To(BeNumerically(">=", 0))
			}
		})

		It("ends within one step of the time budget when still airborne", func() {
			cfg.MaxTime = 0.05
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			last, _ := tr.Last()
			Expect(last.Y).To(BeNumerically(">=", 0))
			Expect(last.T).To(BeNumerically("<=", cfg.MaxTime))
			Expect(last.T).To(BeNumerically(">=", cfg.MaxTime-cfg.TimeStep-1e-9))
			Expect(tr.Termination).To(Equal(flight.TimeBudget))
		})

		It("emits exactly one sample when the step exceeds the budget", func() {
			cfg.TimeStep = 20
			cfg.MaxTime = 10
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Samples).To(HaveLen(1))
			Expect(tr.Samples[0].T).To(Equal(0.0))
		})

		It("runs a non-finite state out to the time budget", func() {
			p.Speed = math.MaxFloat64
			p.Angle = 45
			cfg.MaxTime = 1
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Termination).To(Equal(flight.TimeBudget))

			last, ok := tr.Last()
			Expect(ok).To(BeTrue())
			Expect(math.IsNaN(last.Y)).To(BeTrue())
			Expect(last.T).To(BeNumerically("~", cfg.MaxTime, cfg.TimeStep))
			Expect(tr.Len()).To(BeNumerically(">", 1))
		})
	})

	Describe("sample contents", func() {
		It("reports pre-step speed alongside post-step kinematics", func() {
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(tr.Samples[0].V).To(BeNumerically("~", p.Speed, 1e-12))
			Expect(tr.Samples[0].T).To(Equal(0.0))

			for i := 1; i < tr.Len(); i++ {
				prev, cur := tr.Samples[i-1], tr.Samples[i]
				Expect(cur.V).To(BeNumerically("~", math.Hypot(prev.VX, prev.VY), 1e-12))
				Expect(cur.T).To(BeNumerically("~", float64(i)*cfg.TimeStep, 1e-9))
			}
		})

		It("advances position with the updated velocity", func() {
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			first := tr.Samples[0]
			Expect(first.X).To(Equal(first.VX * cfg.TimeStep))
			Expect(first.Y).To(Equal(first.VY * cfg.TimeStep))
		})

		It("starts from the origin with the launch velocity", func() {
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			vx, vy := p.Launch()
			Expect(tr.Initial).To(Equal(flight.State{VX: vx, VY: vy}))

			xs, ys := tr.Path()
			Expect(xs).To(HaveLen(tr.Len() + 1))
			Expect(xs[0]).To(Equal(0.0))
			Expect(ys[0]).To(Equal(0.0))
		})
	})

	Describe("physical behaviour", func() {
		It("matches vacuum motion when drag is negligible", func() {
			p = physics.Params{
				Gravity:      9.81,
				FluidDensity: 1e-12,
				Viscosity:    1e-12,
				Diameter:     0.01,
				Mass:         1,
				Angle:        45,
				Speed:        10,
			}
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Termination).To(Equal(flight.Impact))

			vx0, vy0 := p.Launch()
			for _, s := range tr.Samples {
				// a sample at t holds the state at t+dt
				elapsed := s.T + cfg.TimeStep
				Expect(s.X).To(BeNumerically("~", vx0*elapsed, 1e-6))
				Expect(s.Y).To(BeNumerically("~", vy0*elapsed-0.5*p.Gravity*elapsed*elapsed, 0.01))
			}

			flightTime := 2 * vy0 / p.Gravity
			last, _ := tr.Last()
			Expect(last.T).To(BeNumerically("~", flightTime, 3*cfg.TimeStep))
		})

		It("falls straight down from rest without dividing by zero", func() {
			p.Speed = 0
			p.Angle = 73
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Samples).To(HaveLen(1))

			s := tr.Samples[0]
			Expect(s.V).To(Equal(0.0))
			Expect(s.Re).To(Equal(0.0))
			Expect(s.C).To(Equal(0.0))
			Expect(s.VX).To(Equal(0.0))
			Expect(s.X).To(Equal(0.0))
			Expect(s.VY).To(Equal(-p.Gravity * cfg.TimeStep))
			Expect(s.Y).To(Equal(-p.Gravity * cfg.TimeStep * cfg.TimeStep))
			Expect(tr.Termination).To(Equal(flight.Impact))
		})

		It("keeps a vertical launch on the vertical axis", func() {
			p.Angle = 90
			tr, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			last, _ := tr.Last()
			Expect(math.Abs(last.X)).To(BeNumerically("<", 1e-9))
		})

		It("travels less far in a dense viscous fluid than in air", func() {
			air, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			water := p
			water.FluidDensity = 1000
			water.Viscosity = 0.001
			wet, err := sim.Run(water, cfg)
			Expect(err).NotTo(HaveOccurred())

			airLast, _ := air.Last()
			wetLast, _ := wet.Last()
			Expect(wetLast.X).To(BeNumerically("<", airLast.X))
		})
	})

	Describe("determinism", func() {
		It("produces identical trajectories for identical inputs", func() {
			a, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := flight.New().Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(*a).To(Equal(*b))
			for i := range a.Samples {
				Expect(math.Float64bits(a.Samples[i].Y)).To(Equal(math.Float64bits(b.Samples[i].Y)))
			}
		})
	})

	Describe("logging", func() {
		It("logs run start and termination at debug level", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			sim = flight.New(flight.WithLogger(zap.New(core)))

			_, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(logs.FilterMessage("run started").Len()).To(Equal(1))
			finished := logs.FilterMessage("run finished").All()
			Expect(finished).To(HaveLen(1))
			Expect(finished[0].ContextMap()).To(HaveKeyWithValue("termination", "impact"))
		})

		It("ignores a nil logger", func() {
			sim = flight.New(flight.WithLogger(nil))
			_, err := sim.Run(p, cfg)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
