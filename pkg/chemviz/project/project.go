// Package project turns numeric table columns into sorted chart series.
package project

import (
	"fmt"
	"math"
	"sort"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
)

// Spec names the identifying columns of a compound table.
type Spec struct {
	// NameColumn holds the display names used as x labels.
	NameColumn string
	// KeyColumn holds the identifiers used to join other tables.
	// Defaults to NameColumn.
	KeyColumn string
}

func (s Spec) key() string {
	if s.KeyColumn == "" {
		return s.NameColumn
	}
	return s.KeyColumn
}

// Columns returns the numeric columns of f that become charts. The
// name and key columns never do, whatever their type.
func Columns(f *frame.Frame, spec Spec) []string {
	return f.NumericColumns(spec.NameColumn, spec.key())
}

// Series sorts f ascending by column and returns the resulting series.
// The sort is stable; null and NaN values go last in source order.
func Series(f *frame.Frame, spec Spec, column string) (*models.ChartSeries, error) {
	if column == spec.NameColumn || column == spec.key() {
		return nil, fmt.Errorf("column %q identifies compounds and cannot be charted", column)
	}
	values, err := f.Numbers(column)
	if err != nil {
		return nil, err
	}

	perm := Order(values)
	sorted := f.Permute(perm)

	names, err := sorted.Labels(spec.NameColumn)
	if err != nil {
		return nil, err
	}
	keys, err := sorted.Labels(spec.key())
	if err != nil {
		return nil, err
	}
	ys, err := sorted.Numbers(column)
	if err != nil {
		return nil, err
	}
	return &models.ChartSeries{
		Column:  column,
		XValues: names,
		YValues: ys,
		Keys:    keys,
		Rows:    perm,
	}, nil
}

// All returns one series per chartable column, in schema order.
func All(f *frame.Frame, spec Spec) ([]*models.ChartSeries, error) {
	if _, ok := f.Schema().Lookup(spec.NameColumn); !ok {
		return nil, &frame.ColumnError{Frame: f.Name(), Column: spec.NameColumn, Reason: "no such column"}
	}
	if _, err := f.Index(spec.key()); err != nil {
		return nil, err
	}

	var out []*models.ChartSeries
	for _, col := range Columns(f, spec) {
		s, err := Series(f, spec, col)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Order returns the stable ascending permutation of values.
func Order(values []frame.Number) []int {
	perm := make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		a, b := values[perm[i]], values[perm[j]]
		aMissing := !a.Valid || math.IsNaN(a.Value)
		bMissing := !b.Valid || math.IsNaN(b.Value)
		if aMissing || bMissing {
			return !aMissing && bMissing
		}
		return a.Value < b.Value
	})
	return perm
}
