package chemviz

import (
	"context"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/align"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/assets"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/output"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/project"
)

// Report summarizes a run.
type Report struct {
	// Outputs lists the files written.
	Outputs []string
	// Warnings lists manifest images that were not found.
	Warnings []assets.Warning
	// Alignment holds one entry per aligned chart ordering.
	Alignment []align.Report
}

// barChartData is the shared result of loading and aligning the inputs
// of a bar chart.
type barChartData struct {
	bundles []*align.Bundle
	images  models.Images
	report  *Report
}

func prepareBarCharts(ctx context.Context, artifact string, in Inputs, opts Options) (*barChartData, error) {
	if err := RequireFiles(in.Properties.Path, in.Manifest, in.Yields.Path); err != nil {
		return nil, err
	}
	if err := RequireDir(in.ImageDir, "image directory"); err != nil {
		return nil, err
	}

	props, err := loadTable(in.Properties)
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	yields, err := loadTable(in.Yields)
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := resolveImages(in, assets.ModeInline, opts)
	if err != nil {
		return nil, NewStageError(artifact, "resolve", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series, err := project.All(props, opts.spec())
	if err != nil {
		return nil, NewStageError(artifact, "project", err)
	}

	data := &barChartData{
		images: res.Images,
		report: &Report{Warnings: res.Warnings},
	}
	alignOpts := align.Options{
		KeyColumn: opts.yieldKey(),
		Methods:   opts.Methods,
		Strict:    opts.ShouldAlignStrictly(),
	}
	for _, s := range series {
		b, err := align.Traces(s, yields, alignOpts)
		if err != nil {
			return nil, NewStageError(artifact, "align", err)
		}
		data.bundles = append(data.bundles, b)
		data.report.Alignment = append(data.report.Alignment, b.Report)
	}
	// Every series orders the same compounds, so one report covers them.
	if len(data.bundles) > 0 {
		align.LogUnresolved(data.bundles[0].Report, alignOpts.KeyColumn, opts.logger())
	}
	return data, nil
}

// BuildBarChart assembles the bar chart document: one chart per
// numeric property column with the yield overlays aligned to it.
func BuildBarChart(ctx context.Context, title string, in Inputs, opts Options) (*models.BarChartDocument, *Report, error) {
	data, err := prepareBarCharts(ctx, "bar chart", in, opts)
	if err != nil {
		return nil, nil, err
	}

	doc := &models.BarChartDocument{
		PageTitle: title,
		Data:      make(map[string]models.ColumnChart, len(data.bundles)),
		Images:    data.images,
	}
	for _, b := range data.bundles {
		doc.Data[b.Series.Column] = models.ColumnChart{
			XValues:   b.Series.XValues,
			YValues:   b.Series.YValues,
			YRange:    yRange(b.Series.YValues),
			YieldData: b.Traces,
		}
	}
	return doc, data.report, nil
}

// GenerateBarChartJSON builds the bar chart document and writes it to path.
func GenerateBarChartJSON(ctx context.Context, path, title string, in Inputs, opts Options) (*Report, error) {
	doc, rep, err := BuildBarChart(ctx, title, in, opts)
	if err != nil {
		return nil, err
	}
	data, err := output.ToJSON(doc, output.IndentBarChart)
	if err != nil {
		return nil, NewStageError("bar chart", "emit", err)
	}
	if err := output.WriteFiles(output.File{Path: path, Data: data}); err != nil {
		return nil, NewStageError("bar chart", "emit", err)
	}
	opts.logger().Info("Bar chart JSON data file generated", "path", path, "charts", len(doc.Data))
	rep.Outputs = append(rep.Outputs, path)
	return rep, nil
}

// yRange returns the [min, max] of the finite values, or nil.
func yRange(ys []frame.Number) []float64 {
	var xs []float64
	for _, y := range ys {
		if y.Finite() {
			xs = append(xs, y.Value)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	lo, hi := stats.Bounds(xs)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	return []float64{lo, hi}
}
