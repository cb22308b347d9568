// Package report writes experiment results as a CSV table and renders them
// for the terminal.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nvandessel/montyhall/internal/constants"
	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/pathutil"
)

// CSVWriter writes result rows under the standard header.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row to w and returns a writer for the data rows.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.Header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &CSVWriter{w: cw}, nil
}

// WriteRow implements experiment.RowWriter.
func (c *CSVWriter) WriteRow(row experiment.Row) error {
	record := []string{
		strconv.Itoa(row.Doors),
		row.Strategy.Label(),
		FormatFloat(row.Theoretical),
		FormatFloat(row.Experimental),
	}
	if err := c.w.Write(record); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Flush writes any buffered data and reports the first error seen by the writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// FormatFloat renders f in the shortest form that parses back to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteFile creates or truncates path, writes the header and hands a row
// writer to fill. The file is flushed and closed on every return path; rows
// written before a failure are kept.
func WriteFile(path string, fill func(experiment.RowWriter) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", pathutil.RedactPath(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", pathutil.RedactPath(path), cerr)
		}
	}()

	cw, err := NewCSVWriter(f)
	if err != nil {
		return err
	}

	if err := fill(cw); err != nil {
		_ = cw.Flush()
		return err
	}

	return cw.Flush()
}
