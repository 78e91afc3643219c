package metrics

import (
	"math"

	"github.com/san-kum/ballistic/internal/drag"
	"github.com/san-kum/ballistic/internal/flight"
)

// Summary condenses a trajectory into the figures shown next to a run.
type Summary struct {
	Range       float64             `json:"range"`
	Apex        float64             `json:"apex"`
	FlightTime  float64             `json:"flight_time"`
	ImpactSpeed float64             `json:"impact_speed"`
	MaxReynolds float64             `json:"max_reynolds"`
	EnergyLoss  float64             `json:"energy_loss"`
	Regimes     map[drag.Regime]int `json:"-"`
	Termination flight.Termination  `json:"termination"`
}

func Summarize(tr *flight.Trajectory) Summary {
	last, ok := tr.Last()
	if !ok {
		return Summary{}
	}

	s := Summary{
		Range:       last.X,
		FlightTime:  last.T + tr.Config.TimeStep,
		ImpactSpeed: last.Speed(),
		Regimes:     make(map[drag.Regime]int),
		Termination: tr.Termination,
	}

	for _, sample := range tr.Samples {
		s.Apex = math.Max(s.Apex, sample.Y)
		s.MaxReynolds = math.Max(s.MaxReynolds, sample.Re)
		// zero speed evaluates no drag and has no regime
		if sample.V > 0 {
			s.Regimes[drag.Classify(sample.Re)]++
		}
	}

	e0 := MechanicalEnergy(tr.Params.Mass, tr.Params.Gravity, tr.Initial.VX, tr.Initial.VY, tr.Initial.Y)
	e1 := MechanicalEnergy(tr.Params.Mass, tr.Params.Gravity, last.VX, last.VY, last.Y)
	if e0 != 0 {
		s.EnergyLoss = (e0 - e1) / e0
	}

	return s
}

// MechanicalEnergy is kinetic plus gravitational potential energy.
func MechanicalEnergy(m, g, vx, vy, y float64) float64 {
	return 0.5*m*(vx*vx+vy*vy) + m*g*y
}
