package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	predictionSheet = "Prediction"
)

// WriteXLSX writes a workbook with a Summary sheet holding meta and the loss,
// and a Prediction sheet holding the B and H columns.
func WriteXLSX(w io.Writer, meta []Field, t Table) error {
	f, err := buildWorkbook(meta, t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("table: write xlsx: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to filename.
func SaveXLSX(filename string, meta []Field, t Table) error {
	f, err := buildWorkbook(meta, t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("table: save %s: %w", filename, err)
	}
	return nil
}

func buildWorkbook(meta []Field, t Table) (*excelize.File, error) {
	if len(t.B) != len(t.H) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(t.B), len(t.H))
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, err
	}

	set := func(sheet string, col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	var werr error
	put := func(sheet string, col, row int, v any) {
		if werr == nil {
			werr = set(sheet, col, row, v)
		}
	}

	// Summary
	put(summarySheet, 1, 1, "Name")
	put(summarySheet, 2, 1, "Value")
	row := 2
	for _, fld := range meta {
		put(summarySheet, 1, row, fld.Name)
		put(summarySheet, 2, row, fld.Value)
		row++
	}
	put(summarySheet, 1, row, HeaderPv)
	if t.LossKnown {
		put(summarySheet, 2, row, t.LossDensity)
	} else {
		put(summarySheet, 2, row, "Unknown")
	}

	// Prediction
	if _, err := f.NewSheet(predictionSheet); err != nil {
		f.Close()
		return nil, err
	}
	put(predictionSheet, 1, 1, "Index")
	put(predictionSheet, 2, 1, HeaderB)
	put(predictionSheet, 3, 1, HeaderH)
	put(predictionSheet, 4, 1, HeaderPv)
	for i := range t.B {
		r := i + 2
		put(predictionSheet, 1, r, i)
		put(predictionSheet, 2, r, t.B[i])
		put(predictionSheet, 3, r, t.H[i])
		if i == 0 && t.LossKnown {
			put(predictionSheet, 4, r, t.LossDensity)
		}
	}

	if werr != nil {
		f.Close()
		return nil, fmt.Errorf("table: fill workbook: %w", werr)
	}
	return f, nil
}
