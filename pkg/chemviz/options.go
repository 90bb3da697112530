// Package chemviz builds chart payloads from compound property, yield
// and image tables.
package chemviz

import (
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/parser"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/project"
)

// Default names of the inputs inside a data directory.
const (
	ManifestFile = "mol_image_paths_captioned.json"
	YieldsFile   = "yields.xlsx"
	MethodsFile  = "yield_data_df.xlsx"
)

// Default column names.
const (
	DefaultNameColumn     = "Compound_Name"
	DefaultYieldKeyColumn = "id"
)

// Table locates one input table.
type Table struct {
	Path string
	parser.TableOptions
}

// Inputs lists the input files of a run.
type Inputs struct {
	// Properties is the compound property table.
	Properties Table
	// Yields holds one row per compound and one column per method.
	Yields Table
	// Methods is the per-method yield table; its numeric columns name
	// the methods of a heatmap.
	Methods Table
	// Manifest is the image manifest JSON.
	Manifest string
	// ImageDir holds the image files named in the manifest.
	ImageDir string
}

// DefaultInputs returns the conventional layout of a data directory.
func DefaultInputs(dataDir, propertiesFile, imageDir string) Inputs {
	in := Inputs{
		Yields:   Table{Path: filepath.Join(dataDir, YieldsFile)},
		Methods:  Table{Path: filepath.Join(dataDir, MethodsFile)},
		Manifest: filepath.Join(dataDir, ManifestFile),
		ImageDir: imageDir,
	}
	if propertiesFile != "" {
		in.Properties = Table{Path: filepath.Join(dataDir, propertiesFile)}
	}
	return in
}

// Options configures payload assembly.
type Options struct {
	// NameColumn holds compound display names. Defaults to Compound_Name.
	NameColumn string
	// KeyColumn holds the identifiers joined against the yields table.
	// Defaults to NameColumn.
	KeyColumn string
	// YieldKeyColumn is the identifier column of the yield tables. Defaults to id.
	YieldKeyColumn string
	// Methods restricts and orders the yield overlays of bar charts.
	Methods []string
	// DataURI emits inline images as data: URIs instead of bare base64.
	DataURI bool
	// StrictAlignment fails a run when a chart ordering shares no key
	// with the yields table. If nil, defaults to true.
	StrictAlignment *bool
	// Logger receives warnings and progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default assembly options.
func DefaultOptions() Options {
	return Options{
		NameColumn:     DefaultNameColumn,
		YieldKeyColumn: DefaultYieldKeyColumn,
	}
}

// ShouldAlignStrictly returns whether an ordering without any matching
// yield row is an error.
func (o Options) ShouldAlignStrictly() bool {
	if o.StrictAlignment != nil {
		return *o.StrictAlignment
	}
	return true
}

func (o Options) spec() project.Spec {
	name := o.NameColumn
	if name == "" {
		name = DefaultNameColumn
	}
	return project.Spec{NameColumn: name, KeyColumn: o.KeyColumn}
}

func (o Options) yieldKey() string {
	if o.YieldKeyColumn == "" {
		return DefaultYieldKeyColumn
	}
	return o.YieldKeyColumn
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
