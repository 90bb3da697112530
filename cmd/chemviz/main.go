// Package main provides the CLI entry point for chemviz-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/common/promslog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/chemviz-go/pkg/chemviz"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/config"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/output"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chemviz",
		Short: "Build chart payloads from compound tables",
		Long: `chemviz-go turns compound property and yield tables plus molecule
images into the JSON documents and HTML pages of a static chart site.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logLevel, logFormat)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "logfmt", "Log format: logfmt, json")

	rootCmd.AddCommand(
		newBarChartCmd(),
		newHeatmapCmd(),
		newHeatmapMatrixCmd(),
		newPagesCmd(),
		newHeatmapPageCmd(),
		newIndexCmd(),
		newRunCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("chemviz failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// inputFlags are the input and column flags shared by payload commands.
type inputFlags struct {
	source  config.Source
	columns config.Columns
	strict  bool
}

func (f *inputFlags) register(cmd *cobra.Command, properties bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.source.DataDir, "data-dir", "data", "Directory holding the tables and the image manifest")
	fs.StringVar(&f.source.ImageDir, "image-dir", "images", "Directory holding the image files")
	if properties {
		fs.StringVar(&f.source.Properties, "properties", "Select_properties.xlsx", "Property table, relative to the data directory")
	}
	fs.StringVar(&f.source.Yields, "yields", chemviz.YieldsFile, "Yields table, relative to the data directory")
	fs.StringVar(&f.source.MethodYields, "method-yields", chemviz.MethodsFile, "Per-method yield table, relative to the data directory")
	fs.StringVar(&f.source.Manifest, "manifest", chemviz.ManifestFile, "Image manifest, relative to the data directory")
	fs.StringVar(&f.source.Sheet, "sheet", "", "Worksheet of workbook tables (default: first sheet)")
	fs.StringVar(&f.source.Encoding, "encoding", "", "Charset of text tables (default: utf-8)")

	fs.StringVar(&f.columns.NameColumn, "name-column", chemviz.DefaultNameColumn, "Column holding compound names")
	fs.StringVar(&f.columns.KeyColumn, "key-column", "", "Column joined against the yields table (default: name column)")
	fs.StringVar(&f.columns.YieldKeyColumn, "yield-key-column", chemviz.DefaultYieldKeyColumn, "Identifier column of the yield tables")
	fs.StringSliceVar(&f.columns.Methods, "methods", nil, "Yield methods to overlay, in order (default: all)")
	fs.BoolVar(&f.columns.DataURI, "data-uri", false, "Emit inline images as data: URIs")
	fs.BoolVar(&f.strict, "strict", true, "Fail when a chart shares no key with the yields table")
}

func (f *inputFlags) inputs() chemviz.Inputs {
	return f.source.Inputs()
}

func (f *inputFlags) options() chemviz.Options {
	c := f.columns
	strict := f.strict
	c.StrictAlignment = &strict
	return c.Options()
}

func newBarChartCmd() *cobra.Command {
	var (
		in         inputFlags
		outputPath string
		title      string
	)
	cmd := &cobra.Command{
		Use:   "barchart",
		Short: "Generate the bar chart JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := chemviz.GenerateBarChartJSON(cmd.Context(), outputPath, title, in.inputs(), in.options())
			return err
		},
	}
	in.register(cmd, true)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "docs/data/barchart/bar_chart_data.json", "Output file path")
	cmd.Flags().StringVar(&title, "title", "Bar Chart of 35 Compound with DFT Properties", "Page title")
	return cmd
}

func newHeatmapCmd() *cobra.Command {
	var (
		in  inputFlags
		job chemviz.HeatmapJob
	)
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Generate the heatmap JSON document and its yield document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := chemviz.GenerateHeatmapJSON(cmd.Context(), job, in.inputs(), in.options())
			return err
		},
	}
	in.register(cmd, false)
	cmd.Flags().StringVarP(&job.Output, "output", "o", "docs/data/heatmap/252_compounds.json", "Output file path")
	cmd.Flags().StringVar(&job.SiteDir, "site-dir", "docs", "Directory the site is served from")
	cmd.Flags().StringVar(&job.YieldDataPath, "yield-data-path", "data/yields/252_yields.json", "Yield document path relative to the site directory")
	cmd.Flags().StringVar(&job.Title, "title", "Yields Map of 252 Compounds", "Page title")
	cmd.Flags().StringVar(&job.GraphName, "graph-name", "Yields Map", "Graph name")
	return cmd
}

func newHeatmapMatrixCmd() *cobra.Command {
	var (
		in         inputFlags
		outputPath string
	)
	cmd := &cobra.Command{
		Use:   "heatmap-matrix",
		Short: "Generate the self-contained heatmap JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := chemviz.GenerateHeatmapMatrixJSON(cmd.Context(), outputPath, in.inputs(), in.options())
			return err
		},
	}
	in.register(cmd, false)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "docs/data/heatmap_data.json", "Output file path")
	return cmd
}

func newPagesCmd() *cobra.Command {
	var (
		in           inputFlags
		templatePath string
		outputDir    string
	)
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Render one HTML bar chart page per property column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := chemviz.RenderBarChartPages(cmd.Context(), templatePath, outputDir, in.inputs(), in.options())
			return err
		},
	}
	in.register(cmd, true)
	cmd.Flags().StringVar(&templatePath, "template", filepath.Join("templates", "bar_chart_template.html"), "Page template")
	cmd.Flags().StringVar(&outputDir, "output-dir", "docs", "Directory for the rendered pages")
	return cmd
}

func newHeatmapPageCmd() *cobra.Command {
	var (
		in           inputFlags
		templatePath string
		outputPath   string
		title        string
	)
	cmd := &cobra.Command{
		Use:   "heatmap-page",
		Short: "Render the HTML heatmap page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := chemviz.RenderHeatmapPage(cmd.Context(), templatePath, outputPath, title, in.inputs(), in.options())
			return err
		},
	}
	in.register(cmd, false)
	cmd.Flags().StringVar(&templatePath, "template", filepath.Join("templates", "heapmap_template.html"), "Page template")
	cmd.Flags().StringVarP(&outputPath, "output", "o", filepath.Join("docs", "Yield Heatmap.html"), "Output file path")
	cmd.Flags().StringVar(&title, "title", "Yield interactive heatmap", "Page title")
	return cmd
}

func newIndexCmd() *cobra.Command {
	var (
		siteDir string
		idx     config.Index
	)
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Generate the index page of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeIndex(siteDir, &idx)
		},
	}
	cmd.Flags().StringVar(&siteDir, "site-dir", "docs", "Directory the site is served from")
	cmd.Flags().StringVar(&idx.Title, "title", "", "Repository name (default: working directory name)")
	cmd.Flags().StringVar(&idx.TimeZone, "time-zone", config.DefaultTimeZone, "Time zone of the displayed times")
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [config.toml|config.yaml]",
		Short: "Build every artifact of a site build file",
		Long: `run builds every artifact listed in a TOML or YAML site build file.
Without a file it builds the published site layout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Defaults()
			if len(args) == 1 {
				var err error
				if f, err = config.Load(args[0]); err != nil {
					return err
				}
			}
			return runFile(cmd.Context(), f)
		},
	}
}

// configureLogging sets up the slog logger with the specified level and format.
func configureLogging(levelStr, formatStr string) error {
	level := promslog.NewLevel()
	if err := level.Set(levelStr); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	format := promslog.NewFormat()
	if err := format.Set(formatStr); err != nil {
		return fmt.Errorf("invalid log format: %w", err)
	}

	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
	})
	slog.SetDefault(logger)
	return nil
}

func writeIndex(dir string, idx *config.Index) error {
	loc, err := idx.Location()
	if err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	name := idx.Title
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		name = filepath.Base(wd)
	}
	path, err := output.WriteIndex(output.IndexOptions{
		SiteDir:  dir,
		Title:    name,
		Now:      time.Now,
		Location: loc,
	})
	if err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	slog.Info("Index page generated", "path", path)
	return nil
}
