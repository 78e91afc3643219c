package flight_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/physics"
)

var _ = Describe("RunAll", func() {
	var (
		sim  *flight.Simulator
		jobs []flight.Job
	)

	BeforeEach(func() {
		sim = flight.New()
		jobs = nil
		for _, angle := range []float64{15, 30, 45, 60, 75} {
			p := physics.DefaultParams()
			p.Angle = angle
			cfg := flight.DefaultConfig()
			cfg.TimeStep = 0.0005 * angle / 15
			jobs = append(jobs, flight.Job{Params: p, Config: cfg})
		}
	})

	It("returns trajectories in input order matching sequential runs", func() {
		Expect(jobs[0].Config.TimeStep).NotTo(Equal(jobs[4].Config.TimeStep))

		results, err := sim.RunAll(context.Background(), jobs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(jobs)))

		for i, job := range jobs {
			want, err := sim.Run(job.Params, job.Config)
			Expect(err).NotTo(HaveOccurred())
			Expect(*results[i]).To(Equal(*want))
		}
	})

	It("fails the batch when any parameter set is invalid", func() {
		jobs[2].Params.Viscosity = 0
		results, err := sim.RunAll(context.Background(), jobs)
		Expect(err).To(MatchError(physics.ErrInvalidParams))
		Expect(results).To(BeNil())
	})

	It("does not start runs once the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sim.RunAll(ctx, jobs)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("handles an empty batch", func() {
		results, err := sim.RunAll(context.Background(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})
})
