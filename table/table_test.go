package table

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample(t *testing.T) Table {
	t.Helper()
	tb, err := New([]float64{0, 100, -50.5}, []float64{1.5, 20, -3}, 12345.5, true)
	require.NoError(t, err)
	return tb
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]float64{1, 2}, []float64{1}, 0, true)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample(t)))

	want := strings.Join([]string{
		",B [mT],H [A/m],Pv [W/m3]",
		"0,0,1.5,12345.5",
		"1,100,20,",
		"2,-50.5,-3,",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVUnknownLoss(t *testing.T) {
	tb, err := New([]float64{0, 0}, []float64{0, 0}, 0, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tb))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0,0,0,", lines[1])
}

func TestReadFirstRow(t *testing.T) {
	in := "\n0.1, 0.2,-0.3,,\n9,9,9\n"
	row, err := ReadFirstRow(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, -0.3}, row)
}

func TestReadFirstRowErrors(t *testing.T) {
	_, err := ReadFirstRow(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ReadFirstRow(strings.NewReader("0.1,abc,0.3\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadFirstRowRejectsNonFinite(t *testing.T) {
	for _, in := range []string{
		"0.1,NaN,-0.1,Inf,0.1\n",
		"0.1,nan\n",
		"-inf,0\n",
		"0,+Infinity\n",
		"0,1e999\n",
	} {
		_, err := ReadFirstRow(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformed, in)
	}
}

func TestReadFirstRowRoundTripsColumn(t *testing.T) {
	// A B column written as one row reads back unchanged.
	b := []float64{0, 0.05, 0.1, 0.05, 0, -0.05, -0.1, -0.05}
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = formatFloat(v)
	}
	row, err := ReadFirstRow(strings.NewReader(strings.Join(parts, ",")))
	require.NoError(t, err)
	assert.Equal(t, b, row)
}

func TestWriteXLSX(t *testing.T) {
	meta := []Field{
		{Name: "Model", Value: "Sydney"},
		{Name: "Material", Value: "N87"},
		{Name: "Frequency [kHz]", Value: 100.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, meta, sample(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, predictionSheet}, f.GetSheetList())

	v, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sydney", v)
	v, err = f.GetCellValue(summarySheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, HeaderPv, v)

	rows, err := f.GetRows(predictionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Index", HeaderB, HeaderH, HeaderPv}, rows[0])
	assert.Equal(t, "100", rows[2][1])
}

func TestSaveXLSXUnknownLoss(t *testing.T) {
	tb, err := New([]float64{0}, []float64{0}, 0, false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultXLSXName)
	require.NoError(t, SaveXLSX(path, nil, tb))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", v)
}
