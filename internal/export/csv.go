// Package export writes a finished glucose series to interchange formats.
// Every export is an explicit one-shot write; nothing is persisted between
// runs.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/glucosim/internal/glucose"
)

// WriteCSV writes one row per minute with a header line.
func WriteCSV(w io.Writer, series glucose.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"minute", "glucose_mg_dl"}); err != nil {
		return err
	}
	for i, v := range series {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
