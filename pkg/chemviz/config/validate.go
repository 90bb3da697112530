package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// FieldError reports an invalid config value.
type FieldError struct {
	Field  string // e.g. "heatmaps[0].output"
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks that every artifact names its inputs and outputs.
func (f *File) Validate() error {
	var errs []error
	required := func(field, value string) {
		if value == "" {
			errs = append(errs, &FieldError{Field: field, Reason: "required"})
		}
	}
	source := func(prefix string, s Source, properties bool) {
		required(prefix+".data_dir", s.DataDir)
		required(prefix+".image_dir", s.ImageDir)
		if properties {
			required(prefix+".properties", s.Properties)
		}
	}

	for i, c := range f.BarCharts {
		p := fmt.Sprintf("bar_charts[%d]", i)
		required(p+".output", c.Output)
		source(p, c.Source, true)
	}
	for i, h := range f.Heatmaps {
		p := fmt.Sprintf("heatmaps[%d]", i)
		required(p+".output", h.Output)
		required(p+".yield_data_path", h.YieldDataPath)
		if filepath.IsAbs(h.YieldDataPath) {
			errs = append(errs, &FieldError{Field: p + ".yield_data_path", Reason: "must be relative to the site dir"})
		}
		source(p, h.Source, false)
	}
	for i, pg := range f.BarChartPages {
		p := fmt.Sprintf("bar_chart_pages[%d]", i)
		required(p+".template", pg.Template)
		required(p+".output_dir", pg.OutputDir)
		source(p, pg.Source, true)
	}
	for i, pg := range f.HeatmapPages {
		p := fmt.Sprintf("heatmap_pages[%d]", i)
		required(p+".template", pg.Template)
		required(p+".output", pg.Output)
		source(p, pg.Source, false)
	}
	if f.Index != nil {
		if _, err := f.Index.Location(); err != nil {
			errs = append(errs, &FieldError{Field: "index.time_zone", Reason: err.Error()})
		}
	}
	return errors.Join(errs...)
}
