// Package config reads site build files describing which payloads and
// pages to generate.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chemviz-go/pkg/chemviz"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/parser"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// DefaultTimeZone is the zone of the times shown on the index page.
const DefaultTimeZone = "America/Chicago"

// File is a site build file.
type File struct {
	Site Site `toml:"site" yaml:"site"`

	// Index is generated after every other artifact when set.
	Index *Index `toml:"index,omitempty" yaml:"index,omitempty"`

	BarCharts     []BarChart      `toml:"bar_charts,omitempty" yaml:"bar_charts,omitempty"`
	Heatmaps      []Heatmap       `toml:"heatmaps,omitempty" yaml:"heatmaps,omitempty"`
	BarChartPages []BarChartPages `toml:"bar_chart_pages,omitempty" yaml:"bar_chart_pages,omitempty"`
	HeatmapPages  []HeatmapPage   `toml:"heatmap_pages,omitempty" yaml:"heatmap_pages,omitempty"`
}

// Site describes the served directory.
type Site struct {
	// Dir is the directory the pages are served from. Default: "docs"
	Dir string `toml:"dir,omitempty" yaml:"dir,omitempty"`
}

// Index configures the index page.
type Index struct {
	// Title names the repository in the page heading. Defaults to the
	// name of the working directory.
	Title string `toml:"title,omitempty" yaml:"title,omitempty"`

	// TimeZone is an IANA zone name. Default: "America/Chicago"
	TimeZone string `toml:"time_zone,omitempty" yaml:"time_zone,omitempty"`
}

// Location loads the configured time zone.
func (i *Index) Location() (*time.Location, error) {
	tz := i.TimeZone
	if tz == "" {
		tz = DefaultTimeZone
	}
	return time.LoadLocation(tz)
}

// Source locates the inputs of one artifact.
type Source struct {
	// DataDir holds the tables and the image manifest.
	DataDir string `toml:"data_dir" yaml:"data_dir"`
	// ImageDir holds the image files.
	ImageDir string `toml:"image_dir" yaml:"image_dir"`

	// Table file names, relative to DataDir unless absolute.
	// MethodYields is the per-method yield table.
	Properties   string `toml:"properties,omitempty" yaml:"properties,omitempty"`
	Yields       string `toml:"yields,omitempty" yaml:"yields,omitempty"`
	MethodYields string `toml:"method_yields,omitempty" yaml:"method_yields,omitempty"`
	Manifest     string `toml:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Sheet selects the worksheet of workbook tables.
	Sheet string `toml:"sheet,omitempty" yaml:"sheet,omitempty"`
	// Encoding is the charset of text tables, e.g. "windows-1252".
	Encoding string `toml:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// Inputs returns the input files named by s.
func (s Source) Inputs() chemviz.Inputs {
	in := chemviz.DefaultInputs(s.DataDir, "", s.ImageDir)
	if s.Properties != "" {
		in.Properties.Path = s.path(s.Properties)
	}
	if s.Yields != "" {
		in.Yields.Path = s.path(s.Yields)
	}
	if s.MethodYields != "" {
		in.Methods.Path = s.path(s.MethodYields)
	}
	if s.Manifest != "" {
		in.Manifest = s.path(s.Manifest)
	}
	opts := parser.TableOptions{Sheet: s.Sheet, Encoding: s.Encoding}
	in.Properties.TableOptions = opts
	in.Yields.TableOptions = opts
	in.Methods.TableOptions = opts
	return in
}

func (s Source) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.DataDir, name)
}

// Columns configures which columns are read.
type Columns struct {
	// NameColumn holds compound display names. Default: "Compound_Name"
	NameColumn string `toml:"name_column,omitempty" yaml:"name_column,omitempty"`
	// KeyColumn holds the identifiers joined against the yields table.
	// Defaults to NameColumn.
	KeyColumn string `toml:"key_column,omitempty" yaml:"key_column,omitempty"`
	// YieldKeyColumn is the identifier column of the yield tables. Default: "id"
	YieldKeyColumn string `toml:"yield_key_column,omitempty" yaml:"yield_key_column,omitempty"`
	// Methods restricts and orders the yield overlays.
	Methods []string `toml:"methods,omitempty" yaml:"methods,omitempty"`
	// DataURI emits inline images as data: URIs.
	DataURI bool `toml:"data_uri,omitempty" yaml:"data_uri,omitempty"`
	// StrictAlignment fails when a chart shares no key with the yields
	// table. Default: true
	StrictAlignment *bool `toml:"strict_alignment,omitempty" yaml:"strict_alignment,omitempty"`
}

// Options returns the assembly options.
func (c Columns) Options() chemviz.Options {
	opts := chemviz.DefaultOptions()
	if c.NameColumn != "" {
		opts.NameColumn = c.NameColumn
	}
	if c.YieldKeyColumn != "" {
		opts.YieldKeyColumn = c.YieldKeyColumn
	}
	opts.KeyColumn = c.KeyColumn
	opts.Methods = c.Methods
	opts.DataURI = c.DataURI
	opts.StrictAlignment = c.StrictAlignment
	return opts
}

// BarChart is a bar chart JSON document.
type BarChart struct {
	Output  string `toml:"output" yaml:"output"`
	Title   string `toml:"title" yaml:"title"`
	Source  `yaml:",inline"`
	Columns `yaml:",inline"`
}

// Heatmap is a heatmap JSON document with its yield document.
type Heatmap struct {
	Output string `toml:"output" yaml:"output"`
	// YieldDataPath is the yield document path relative to the site dir.
	YieldDataPath string `toml:"yield_data_path" yaml:"yield_data_path"`
	Title         string `toml:"title" yaml:"title"`
	GraphName     string `toml:"graph_name" yaml:"graph_name"`
	Source        `yaml:",inline"`
	Columns       `yaml:",inline"`
}

// Job returns the heatmap job for a site served from siteDir.
func (h Heatmap) Job(siteDir string) chemviz.HeatmapJob {
	return chemviz.HeatmapJob{
		Output:        h.Output,
		SiteDir:       siteDir,
		YieldDataPath: h.YieldDataPath,
		Title:         h.Title,
		GraphName:     h.GraphName,
	}
}

// BarChartPages is a set of HTML bar chart pages, one per column.
type BarChartPages struct {
	Template  string `toml:"template" yaml:"template"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
	Source    `yaml:",inline"`
	Columns   `yaml:",inline"`
}

// HeatmapPage is a self-contained HTML heatmap page.
type HeatmapPage struct {
	Template string `toml:"template" yaml:"template"`
	Output   string `toml:"output" yaml:"output"`
	Title    string `toml:"title" yaml:"title"`
	Source   `yaml:",inline"`
	Columns  `yaml:",inline"`
}

// Defaults returns the build of the published site.
func Defaults() *File {
	compounds := Source{DataDir: "data", ImageDir: "images", Properties: "Select_properties.xlsx"}
	return &File{
		Site:  Site{Dir: "docs"},
		Index: &Index{TimeZone: DefaultTimeZone},
		BarCharts: []BarChart{{
			Output: "docs/data/barchart/bar_chart_data.json",
			Title:  "Bar Chart of 35 Compound with DFT Properties",
			Source: compounds,
		}},
		Heatmaps: []Heatmap{{
			Output:        "docs/data/heatmap/252_compounds.json",
			YieldDataPath: "data/yields/252_yields.json",
			Title:         "Yields Map of 252 Compounds",
			GraphName:     "Yields Map",
			Source:        Source{DataDir: "data_252", ImageDir: filepath.Join("docs", "images")},
		}},
		BarChartPages: []BarChartPages{{
			Template:  filepath.Join("templates", "bar_chart_template.html"),
			OutputDir: "docs",
			Source:    compounds,
		}},
		HeatmapPages: []HeatmapPage{{
			Template: filepath.Join("templates", "heapmap_template.html"),
			Output:   filepath.Join("docs", "Yield Heatmap.html"),
			Title:    "Yield interactive heatmap",
			Source:   Source{DataDir: "data", ImageDir: "images"},
		}},
	}
}

// Load reads a TOML or YAML build file, chosen by extension, and
// validates it. Unknown keys are rejected.
func Load(path string) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		r, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if f.Site.Dir == "" {
		f.Site.Dir = "docs"
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &f, nil
}
