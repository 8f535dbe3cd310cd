package table

import (
	"errors"
	"fmt"
)

// DefaultCSVName is the file name offered for the CSV download.
const DefaultCSVName = "magnet-engine_prediction.csv"

// DefaultXLSXName is the file name offered for the workbook download.
const DefaultXLSXName = "magnet-engine_prediction.xlsx"

// Column headers of the prediction table.
const (
	HeaderB  = "B [mT]"
	HeaderH  = "H [A/m]"
	HeaderPv = "Pv [W/m3]"
)

var (
	// ErrLengthMismatch reports B and H columns of different length.
	ErrLengthMismatch = errors.New("table: B and H length mismatch")
	// ErrEmpty reports an upload without any data row.
	ErrEmpty = errors.New("table: no data")
	// ErrMalformed reports an upload value that is not a number.
	ErrMalformed = errors.New("table: malformed value")
)

// Table is one predicted cycle. Pv is a scalar and is only emitted on the
// first row.
type Table struct {
	B           []float64 // mT
	H           []float64 // A/m
	LossDensity float64   // W/m³
	LossKnown   bool
}

// New pairs the B and H columns.
func New(b, h []float64, lossDensity float64, lossKnown bool) (Table, error) {
	if len(b) != len(h) {
		return Table{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(b), len(h))
	}
	return Table{B: b, H: h, LossDensity: lossDensity, LossKnown: lossKnown}, nil
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.B)
}

// Field is one labelled value of the workbook summary sheet.
type Field struct {
	Name  string
	Value any
}
