// Package align re-indexes secondary tables onto a chart ordering so
// that every parallel sequence shares the ordering's positions.
package align

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
)

// Report counts the ordering positions whose key was not found.
type Report struct {
	Table      string
	Total      int
	Unresolved int
	// Missing lists the unresolved keys in ordering order.
	Missing []string
}

// Resolved returns the number of positions that found a row.
func (r Report) Resolved() int { return r.Total - r.Unresolved }

// AlignmentError reports an ordering that shares no key with a table.
type AlignmentError struct {
	Table     string
	KeyColumn string
	Total     int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("table %s: none of %d keys found in column %q", e.Table, e.Total, e.KeyColumn)
}

// Rows maps each key to its row in f, or -1 when f has no such key.
func Rows(keys []string, f *frame.Frame, keyColumn string) ([]int, Report, error) {
	idx, err := f.Index(keyColumn)
	if err != nil {
		return nil, Report{}, err
	}
	rep := Report{Table: f.Name(), Total: len(keys)}
	rows := make([]int, len(keys))
	for i, k := range keys {
		row, ok := idx[k]
		if !ok {
			row = -1
			rep.Unresolved++
			rep.Missing = append(rep.Missing, k)
		}
		rows[i] = row
	}
	return rows, rep, nil
}

// Take picks values by row. A negative row yields null.
func Take(values []frame.Number, rows []int) []frame.Number {
	out := make([]frame.Number, len(rows))
	for i, row := range rows {
		if row >= 0 {
			out[i] = values[row]
		}
	}
	return out
}

// Reindex returns column of f re-ordered to keys. The result always has
// len(keys) entries; keys absent from f hold null.
func Reindex(keys []string, f *frame.Frame, keyColumn, column string) ([]frame.Number, Report, error) {
	values, err := f.Numbers(column)
	if err != nil {
		return nil, Report{}, err
	}
	rows, rep, err := Rows(keys, f, keyColumn)
	if err != nil {
		return nil, Report{}, err
	}
	return Take(values, rows), rep, nil
}

// Check fails when strict and no key of rep resolved.
func Check(rep Report, keyColumn string, strict bool) error {
	if strict && rep.Total > 0 && rep.Resolved() == 0 {
		return &AlignmentError{Table: rep.Table, KeyColumn: keyColumn, Total: rep.Total}
	}
	return nil
}

// LogUnresolved warns once about the keys of rep that found no row.
// Orderings of the same key set share one report, so callers log it once
// per table rather than once per ordering.
func LogUnresolved(rep Report, keyColumn string, logger *slog.Logger) {
	if rep.Unresolved == 0 {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("Keys missing from table",
		"table", rep.Table, "column", keyColumn, "unresolved", rep.Unresolved, "total", rep.Total)
}

// Options configures trace building.
type Options struct {
	// KeyColumn is the identifier column of the yields table.
	KeyColumn string
	// Methods restricts and orders the traces. Defaults to every numeric
	// column of the yields table except KeyColumn.
	Methods []string
	// Strict fails when the series shares no key with the yields table.
	Strict bool
}

// Bundle is a chart series together with everything aligned to it.
type Bundle struct {
	Series *models.ChartSeries
	Traces []models.YieldTrace
	Report Report
}

// Traces aligns a yields table to s and builds one dashed line trace
// per method. Every trace has exactly s.Len() points.
func Traces(s *models.ChartSeries, yields *frame.Frame, opts Options) (*Bundle, error) {
	methods := opts.Methods
	if methods == nil {
		methods = yields.NumericColumns(opts.KeyColumn)
	}

	rows, rep, err := Rows(s.Keys, yields, opts.KeyColumn)
	if err != nil {
		return nil, err
	}
	if err := Check(rep, opts.KeyColumn, opts.Strict); err != nil {
		return nil, err
	}

	b := &Bundle{Series: s, Report: rep, Traces: make([]models.YieldTrace, 0, len(methods))}
	for _, m := range methods {
		values, err := yields.Numbers(m)
		if err != nil {
			return nil, err
		}
		b.Traces = append(b.Traces, models.YieldTrace{
			X:    slices.Clone(s.XValues),
			Y:    Take(values, rows),
			Type: "scatter",
			Mode: "lines",
			Name: m,
			Line: models.Line{Dash: "dash"},
		})
	}
	return b, nil
}

// Images returns the image entries positionally aligned to keys.
// Keys without an image hold nil.
func Images(keys []string, images models.Images) []*string {
	out := make([]*string, len(keys))
	for i, k := range keys {
		out[i] = images[k]
	}
	return out
}
