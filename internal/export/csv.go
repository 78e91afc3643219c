package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/ballistic/internal/flight"
)

var csvHeader = []string{"t", "v", "re", "cd", "vx", "vy", "x", "y"}

func CSV(w io.Writer, tr *flight.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range tr.Samples {
		row := []string{
			format(s.T), format(s.V), format(s.Re), format(s.C),
			format(s.VX), format(s.VY), format(s.X), format(s.Y),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
