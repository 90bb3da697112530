// Package models defines the payload documents written by the pipeline.
package models

import "github.com/ukaji3/chemviz-go/pkg/chemviz/frame"

// ChartSeries is one numeric column of a compound table sorted
// ascending, with the display names along the x axis.
type ChartSeries struct {
	// Column is the numeric column the series was projected from.
	Column string `json:"-"`
	// XValues are the display names in sorted order.
	XValues []string `json:"x_values"`
	// YValues are the sorted column values.
	YValues []frame.Number `json:"y_values"`
	// Keys are the identifiers used to join other tables, one per position.
	Keys []string `json:"-"`
	// Rows maps each position to its row in the source table.
	Rows []int `json:"-"`
}

// Len returns the number of points in the series.
func (s *ChartSeries) Len() int { return len(s.XValues) }

// Line is the trace line style.
type Line struct {
	Dash string `json:"dash"`
}

// YieldTrace is a per-method overlay drawn on top of a bar chart.
// Field names follow the charting library's trace schema.
type YieldTrace struct {
	X    []string       `json:"x"`
	Y    []frame.Number `json:"y"`
	Type string         `json:"type"`
	Mode string         `json:"mode"`
	Name string         `json:"name"`
	Line Line           `json:"line"`
}

// ColumnChart is the per-column record of a bar chart document.
type ColumnChart struct {
	XValues []string       `json:"x_values"`
	YValues []frame.Number `json:"y_values"`
	// YRange is the [min, max] of the valid y values, omitted when none.
	YRange    []float64    `json:"y_range,omitempty"`
	YieldData []YieldTrace `json:"yield_data"`
}

// BarChartDocument is the bar chart JSON payload.
type BarChartDocument struct {
	PageTitle string `json:"page_title"`
	// Data maps numeric column name to its chart.
	Data map[string]ColumnChart `json:"data"`
	// Images maps compound identifier to its inline image.
	Images Images `json:"images"`
}
