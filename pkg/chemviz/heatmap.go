package chemviz

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/align"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/assets"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/output"
)

// HeatmapJob describes a heatmap document and its yield document.
type HeatmapJob struct {
	// Output is the heatmap document path.
	Output string
	// SiteDir is the directory the pages are served from.
	SiteDir string
	// YieldDataPath is the yield document path relative to SiteDir, as
	// referenced from the heatmap document.
	YieldDataPath string
	Title         string
	GraphName     string
}

type yieldTables struct {
	yields    *frame.Frame
	methods   *frame.Frame
	compounds []string
}

func loadYieldTables(artifact string, in Inputs, opts Options) (*yieldTables, error) {
	yields, err := loadTable(in.Yields)
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	methods, err := loadTable(in.Methods)
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	if _, err := yields.Index(opts.yieldKey()); err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	compounds, err := yields.Labels(opts.yieldKey())
	if err != nil {
		return nil, NewStageError(artifact, "load", err)
	}
	return &yieldTables{yields: yields, methods: methods, compounds: compounds}, nil
}

// methodNames returns the methods of the per-method yield table.
func (t *yieldTables) methodNames(opts Options) []string {
	return t.methods.NumericColumns(opts.yieldKey())
}

// BuildYieldDocument assembles the yield document shared by heatmaps.
func BuildYieldDocument(ctx context.Context, in Inputs, opts Options) (*models.YieldDocument, error) {
	if err := RequireFiles(in.Yields.Path, in.Methods.Path); err != nil {
		return nil, err
	}
	t, err := loadYieldTables("yield data", in, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.yieldDocument(opts)
}

func (t *yieldTables) yieldDocument(opts Options) (*models.YieldDocument, error) {
	doc := &models.YieldDocument{
		Compounds: t.compounds,
		Methods:   t.methodNames(opts),
		Yields:    make(map[string]map[string]frame.Number, len(t.compounds)),
	}
	cols := t.yields.NumericColumns(opts.yieldKey())
	values := make([][]frame.Number, len(cols))
	for i, col := range cols {
		v, err := t.yields.Numbers(col)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	for row, id := range t.compounds {
		rec := make(map[string]frame.Number, len(cols))
		for i, col := range cols {
			rec[col] = values[i][row]
		}
		doc.Yields[id] = rec
	}
	return doc, nil
}

// BuildHeatmap assembles the heatmap document and the yield document it
// references. Images are served paths; missing images map to null.
func BuildHeatmap(ctx context.Context, job HeatmapJob, in Inputs, opts Options) (*models.HeatmapDocument, *models.YieldDocument, *Report, error) {
	if err := RequireFiles(in.Yields.Path, in.Methods.Path, in.Manifest); err != nil {
		return nil, nil, nil, err
	}
	if err := RequireDir(in.ImageDir, "image directory"); err != nil {
		return nil, nil, nil, err
	}

	t, err := loadYieldTables("heatmap", in, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}

	res, err := resolveImages(in, assets.ModePath, opts)
	if err != nil {
		return nil, nil, nil, NewStageError("heatmap", "resolve", err)
	}

	ydoc, err := t.yieldDocument(opts)
	if err != nil {
		return nil, nil, nil, NewStageError("heatmap", "project", err)
	}
	doc := &models.HeatmapDocument{
		PageTitle:     job.Title,
		GraphName:     job.GraphName,
		Compounds:     t.compounds,
		Methods:       t.methodNames(opts),
		YieldDataPath: filepath.ToSlash(job.YieldDataPath),
		Images:        res.Images,
	}
	return doc, ydoc, &Report{Warnings: res.Warnings}, nil
}

// GenerateHeatmapJSON writes the heatmap document and its yield document.
// Both are rendered before either is written.
func GenerateHeatmapJSON(ctx context.Context, job HeatmapJob, in Inputs, opts Options) (*Report, error) {
	doc, ydoc, rep, err := BuildHeatmap(ctx, job, in, opts)
	if err != nil {
		return nil, err
	}

	yieldData, err := output.ToJSON(ydoc, output.IndentHeatmap)
	if err != nil {
		return nil, NewStageError("yield data", "emit", err)
	}
	heatmapData, err := output.ToJSON(doc, output.IndentHeatmap)
	if err != nil {
		return nil, NewStageError("heatmap", "emit", err)
	}

	yieldPath := filepath.Join(job.SiteDir, filepath.FromSlash(job.YieldDataPath))
	err = output.WriteFiles(
		output.File{Path: yieldPath, Data: yieldData},
		output.File{Path: job.Output, Data: heatmapData},
	)
	if err != nil {
		return nil, NewStageError("heatmap", "emit", err)
	}
	opts.logger().Info("Yield JSON data file generated", "path", yieldPath)
	opts.logger().Info("Heatmap JSON data file generated", "path", job.Output)
	rep.Outputs = append(rep.Outputs, yieldPath, job.Output)
	return rep, nil
}

// BuildHeatmapMatrix assembles the self-contained heatmap payload: one
// z row per method, one column per compound of the yields table, and
// inline images.
func BuildHeatmapMatrix(ctx context.Context, in Inputs, opts Options) (*models.HeatmapMatrix, *Report, error) {
	if err := RequireFiles(in.Yields.Path, in.Methods.Path, in.Manifest); err != nil {
		return nil, nil, err
	}
	if err := RequireDir(in.ImageDir, "image directory"); err != nil {
		return nil, nil, err
	}

	t, err := loadYieldTables("heatmap", in, opts)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	res, err := resolveImages(in, assets.ModeInline, opts)
	if err != nil {
		return nil, nil, NewStageError("heatmap", "resolve", err)
	}

	z, arep, err := t.matrix(opts)
	if err != nil {
		return nil, nil, NewStageError("heatmap", "align", err)
	}
	m := &models.HeatmapMatrix{
		ZValues: z,
		XValues: t.compounds,
		YValues: t.methodNames(opts),
		Images:  res.Images,
	}
	rep := &Report{Warnings: res.Warnings}
	if arep != nil {
		rep.Alignment = append(rep.Alignment, *arep)
	}
	return m, rep, nil
}

// matrix lays the per-method table out as methods x compounds. A table
// carrying the identifier column is joined on it; otherwise its rows
// must correspond one to one with the yields table.
func (t *yieldTables) matrix(opts Options) ([][]frame.Number, *align.Report, error) {
	methods := t.methodNames(opts)
	key := opts.yieldKey()

	var rows []int
	var rep *align.Report
	if t.methods.Has(key) {
		r, report, err := align.Rows(t.compounds, t.methods, key)
		if err != nil {
			return nil, nil, err
		}
		align.LogUnresolved(report, key, opts.logger())
		if err := align.Check(report, key, opts.ShouldAlignStrictly()); err != nil {
			return nil, nil, err
		}
		rows, rep = r, &report
	} else {
		if t.methods.Len() != len(t.compounds) {
			return nil, nil, fmt.Errorf("table %s has %d rows but %s has %d compounds and no %q column",
				t.methods.Name(), t.methods.Len(), t.yields.Name(), len(t.compounds), key)
		}
		rows = make([]int, len(t.compounds))
		for i := range rows {
			rows[i] = i
		}
	}

	z := make([][]frame.Number, len(methods))
	for i, m := range methods {
		values, err := t.methods.Numbers(m)
		if err != nil {
			return nil, nil, err
		}
		z[i] = align.Take(values, rows)
	}
	return z, rep, nil
}

// GenerateHeatmapMatrixJSON writes the self-contained heatmap payload.
func GenerateHeatmapMatrixJSON(ctx context.Context, path string, in Inputs, opts Options) (*Report, error) {
	m, rep, err := BuildHeatmapMatrix(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	data, err := output.ToJSON(m, output.IndentBarChart)
	if err != nil {
		return nil, NewStageError("heatmap", "emit", err)
	}
	if err := output.WriteFiles(output.File{Path: path, Data: data}); err != nil {
		return nil, NewStageError("heatmap", "emit", err)
	}
	opts.logger().Info("Heatmap JSON data file generated", "path", path)
	rep.Outputs = append(rep.Outputs, path)
	return rep, nil
}
