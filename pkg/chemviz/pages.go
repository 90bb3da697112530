package chemviz

import (
	"context"
	"path/filepath"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/align"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/output"
)

// PageTitle returns the title of the bar chart page for a column.
func PageTitle(column string) string {
	return column + " by Compound"
}

func loadTemplate(artifact, path string) (*output.Template, error) {
	if err := RequireFiles(path); err != nil {
		return nil, err
	}
	tmpl, err := output.LoadTemplate(path)
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	return tmpl, nil
}

// RenderBarChartPages renders one HTML page per numeric property column
// into outputDir. Pages are written only after all of them rendered.
func RenderBarChartPages(ctx context.Context, templatePath, outputDir string, in Inputs, opts Options) (*Report, error) {
	tmpl, err := loadTemplate("bar chart pages", templatePath)
	if err != nil {
		return nil, err
	}
	data, err := prepareBarCharts(ctx, "bar chart pages", in, opts)
	if err != nil {
		return nil, err
	}

	files := make([]output.File, 0, len(data.bundles))
	for _, b := range data.bundles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := tmpl.Render(&output.BarChartContext{
			Title:   PageTitle(b.Series.Column),
			XValues: b.Series.XValues,
			YValues: b.Series.YValues,
			Images: models.OrderedImages{
				Keys:   b.Series.XValues,
				Values: align.Images(b.Series.Keys, data.images),
			},
			YieldData: b.Traces,
		})
		if err != nil {
			return nil, NewStageError("bar chart pages", "emit", err)
		}
		files = append(files, output.File{
			Path: filepath.Join(outputDir, output.PageFilename(b.Series.Column)),
			Data: page,
		})
	}

	if err := output.WriteFiles(files...); err != nil {
		return nil, NewStageError("bar chart pages", "emit", err)
	}
	rep := data.report
	for _, f := range files {
		opts.logger().Info("Bar chart page generated", "path", f.Path)
		rep.Outputs = append(rep.Outputs, f.Path)
	}
	return rep, nil
}

// RenderHeatmapPage renders the self-contained heatmap page.
func RenderHeatmapPage(ctx context.Context, templatePath, outputPath, title string, in Inputs, opts Options) (*Report, error) {
	tmpl, err := loadTemplate("heatmap page", templatePath)
	if err != nil {
		return nil, err
	}
	m, rep, err := BuildHeatmapMatrix(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	page, err := tmpl.Render(&output.HeatmapContext{Title: title, Matrix: m})
	if err != nil {
		return nil, NewStageError("heatmap page", "emit", err)
	}
	if err := output.WriteFiles(output.File{Path: outputPath, Data: page}); err != nil {
		return nil, NewStageError("heatmap page", "emit", err)
	}
	opts.logger().Info("Heatmap page generated", "path", outputPath)
	rep.Outputs = append(rep.Outputs, outputPath)
	return rep, nil
}
