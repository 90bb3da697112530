package models

import (
	"bytes"
	"encoding/json"
)

// Images maps compound identifier to an image locator or inline data.
// A nil value encodes as JSON null. Keys encode in sorted order.
type Images map[string]*string

// OrderedImages is an image mapping whose keys follow a chart ordering.
// It encodes as a JSON object with keys in slice order.
type OrderedImages struct {
	Keys   []string
	Values []*string
}

// MarshalJSON writes the entries in order. Repeated keys keep their
// first position.
func (o OrderedImages) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	seen := make(map[string]bool, len(o.Keys))
	for i, k := range o.Keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var v *string
		if i < len(o.Values) {
			v = o.Values[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
