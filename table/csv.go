package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// WriteCSV writes t with a leading unnamed index column. Pv is written on
// the first row only; the remaining Pv cells stay empty.
func WriteCSV(w io.Writer, t Table) error {
	if len(t.B) != len(t.H) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(t.B), len(t.H))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"", HeaderB, HeaderH, HeaderPv}); err != nil {
		return err
	}

	rec := make([]string, 4)
	for i := range t.B {
		rec[0] = strconv.Itoa(i)
		rec[1] = formatFloat(t.B[i])
		rec[2] = formatFloat(t.H[i])
		rec[3] = ""
		if i == 0 && t.LossKnown {
			rec[3] = formatFloat(t.LossDensity)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadFirstRow parses the first non-empty CSV record of r as numbers. Empty
// trailing cells are dropped.
func ReadFirstRow(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		if err != nil {
			return nil, fmt.Errorf("table: read csv: %w", err)
		}

		for len(rec) > 0 && strings.TrimSpace(rec[len(rec)-1]) == "" {
			rec = rec[:len(rec)-1]
		}
		if len(rec) == 0 {
			continue
		}

		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: column %d: %q", ErrMalformed, i+1, field)
			}
			row[i] = v
		}
		return row, nil
	}
}
