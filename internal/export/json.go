package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/physics"
)

type Data struct {
	Label       string             `json:"label"`
	Params      physics.Params     `json:"params"`
	Dt          float64            `json:"dt"`
	MaxTime     float64            `json:"max_time"`
	Termination flight.Termination `json:"termination"`
	Steps       int                `json:"steps"`
	Samples     []flight.Sample    `json:"samples"`
}

func JSON(w io.Writer, label string, tr *flight.Trajectory) error {
	data := Data{
		Label:       label,
		Params:      tr.Params,
		Dt:          tr.Config.TimeStep,
		MaxTime:     tr.Config.MaxTime,
		Termination: tr.Termination,
		Steps:       len(tr.Samples),
		Samples:     tr.Samples,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
