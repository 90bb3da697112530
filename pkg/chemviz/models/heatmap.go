package models

import "github.com/ukaji3/chemviz-go/pkg/chemviz/frame"

// HeatmapDocument is the heatmap JSON payload. Yield values live in a
// separate YieldDocument referenced by YieldDataPath.
type HeatmapDocument struct {
	PageTitle     string   `json:"page_title"`
	GraphName     string   `json:"graph_name"`
	Compounds     []string `json:"compounds"`
	Methods       []string `json:"methods"`
	YieldDataPath string   `json:"yield_data_path"`
	// Images maps compound identifier to its served path, null when missing.
	Images Images `json:"images"`
}

// YieldDocument holds every yield value keyed by compound and method.
type YieldDocument struct {
	Compounds []string                           `json:"compounds"`
	Methods   []string                           `json:"methods"`
	Yields    map[string]map[string]frame.Number `json:"yields"`
}

// HeatmapMatrix is the self-contained heatmap payload used by the
// heatmap page template.
type HeatmapMatrix struct {
	// ZValues has one row per method, one column per compound.
	ZValues [][]frame.Number `json:"z_values"`
	// XValues are the compound identifiers.
	XValues []string `json:"x_values"`
	// YValues are the method names.
	YValues []string `json:"y_values"`
	Images  Images   `json:"images"`
}
