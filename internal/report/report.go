// Package report writes convergence tables and path samples as CSV files and
// console tables.
//
// Reports are written through an [Opener], so that callers decide where they
// end up. Each report is independent: failing to write one doesn't affect the
// others.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"honnef.co/go/pathlen"
)

// ErrTooFewPoints is returned by [WritePathData] when asked for fewer than 2
// points.
var ErrTooFewPoints = errors.New("need at least 2 points")

// Opener opens the named report for writing.
type Opener func(name string) (io.WriteCloser, error)

// DirOpener returns an Opener that creates files in dir, creating dir if
// necessary. Existing files are truncated.
func DirOpener(dir string) Opener {
	return func(name string) (io.WriteCloser, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, name))
	}
}

// Save opens the named report and writes it with write. The report is closed
// even if writing fails; the first error is returned.
func Save(open Opener, name string, write func(io.Writer) error) (err error) {
	w, err := open(name)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", name, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("couldn't close %s: %w", name, cerr)
		}
	}()
	if err := write(w); err != nil {
		return fmt.Errorf("couldn't write %s: %w", name, err)
	}
	return nil
}

// formatFloat formats like C's %f.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// WriteConvergence writes the table as CSV with the header
// n_segments,calculated_length and one row per table row.
func WriteConvergence(w io.Writer, t pathlen.ConvergenceTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n_segments", "calculated_length"}); err != nil {
		return err
	}
	for _, row := range t {
		if err := cw.Write([]string{strconv.Itoa(row.N), formatFloat(row.Length)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePathData writes num evenly spaced points of the path over iv as CSV
// with the header x,y.
func WritePathData(w io.Writer, iv pathlen.Interval, num int) error {
	if num < 2 {
		return fmt.Errorf("%w, got %d", ErrTooFewPoints, num)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for pt := range pathlen.Samples(iv, num) {
		x, y := pt.Splat()
		if err := cw.Write([]string{formatFloat(x), formatFloat(y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16858E"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Column widths of the console table, including padding.
const (
	segmentsWidth = 17
	lengthWidth   = 24
)

// RenderConvergence renders the table for the console, with lengths printed
// to 10 decimal places.
func RenderConvergence(t pathlen.ConvergenceTable) string {
	rows := make([][]string, 0, len(t))
	for _, row := range t {
		rows = append(rows, []string{
			strconv.Itoa(row.N),
			strconv.FormatFloat(row.Length, 'f', 10, 64),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Segments (n)", "Path Length (L)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if row == table.HeaderRow {
				s = headerStyle
			}
			if col == 0 {
				return s.Width(segmentsWidth)
			}
			return s.Width(lengthWidth)
		}).
		String()
}
