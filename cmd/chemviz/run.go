package main

import (
	"context"
	"log/slog"

	"github.com/ukaji3/chemviz-go/pkg/chemviz"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/config"
)

// runFile builds the artifacts of f in order: JSON documents, pages, then
// the index so that it lists the fresh pages.
func runFile(ctx context.Context, f *config.File) error {
	var warnings int
	count := func(rep *chemviz.Report) {
		warnings += len(rep.Warnings)
	}

	for _, c := range f.BarCharts {
		rep, err := chemviz.GenerateBarChartJSON(ctx, c.Output, c.Title, c.Inputs(), c.Options())
		if err != nil {
			return err
		}
		count(rep)
	}
	for _, h := range f.Heatmaps {
		rep, err := chemviz.GenerateHeatmapJSON(ctx, h.Job(f.Site.Dir), h.Inputs(), h.Options())
		if err != nil {
			return err
		}
		count(rep)
	}
	for _, p := range f.BarChartPages {
		rep, err := chemviz.RenderBarChartPages(ctx, p.Template, p.OutputDir, p.Inputs(), p.Options())
		if err != nil {
			return err
		}
		count(rep)
	}
	for _, p := range f.HeatmapPages {
		rep, err := chemviz.RenderHeatmapPage(ctx, p.Template, p.Output, p.Title, p.Inputs(), p.Options())
		if err != nil {
			return err
		}
		count(rep)
	}

	if f.Index != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeIndex(f.Site.Dir, f.Index); err != nil {
			return err
		}
	}
	if warnings > 0 {
		slog.Warn("Site built with missing images", "missing", warnings)
	}
	return nil
}
