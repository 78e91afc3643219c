package flight

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/ballistic/internal/physics"
)

// Job is one independent run.
type Job struct {
	Params physics.Params
	Config Config
}

// RunAll runs every job concurrently and returns the trajectories in input
// order. Cancelling ctx prevents jobs that have not started; a run that has
// started always completes.
func (s *Simulator) RunAll(ctx context.Context, jobs []Job) ([]*Trajectory, error) {
	results := make([]*Trajectory, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := s.Run(job.Params, job.Config)
			if err != nil {
				return err
			}
			results[i] = tr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
