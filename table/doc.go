// Package table writes and reads the tabular form of a prediction: the B and H
// waveforms with the volumetric loss, as CSV or as an Excel workbook, and the
// single-row CSV used to upload a custom B waveform.
package table
