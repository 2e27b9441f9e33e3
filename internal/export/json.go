package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/metrics"
)

type jsonDay struct {
	Points  []glucose.Point `json:"points"`
	Summary metrics.Summary `json:"summary"`
}

// WriteJSON writes the full (minute, value) point list plus the day summary.
func WriteJSON(w io.Writer, series glucose.Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDay{
		Points:  series.Points(),
		Summary: metrics.Summarize(series),
	})
}
