// Package assets resolves compound identifiers to molecule images.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Manifest maps compound identifier to an image path. Only the base
// name of each path is used to locate the file on disk.
type Manifest map[string]string

// LoadManifest reads a JSON object of identifier to image path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("image manifest %s: %w", path, err)
	}
	if m == nil {
		m = Manifest{}
	}
	return m, nil
}

// IDs returns the manifest identifiers in sorted order.
func (m Manifest) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
