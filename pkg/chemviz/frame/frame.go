// Package frame defines the typed columnar tables the pipeline works on.
package frame

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Kind is the storage type of a column.
type Kind int

const (
	// KindString holds categorical or free text values.
	KindString Kind = iota
	// KindNumber holds nullable float64 values.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes one column of a Frame.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of fields of a Frame.
type Schema []Field

// Lookup returns the field named name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Numeric returns the names of numeric fields in schema order,
// skipping any name listed in exclude.
func (s Schema) Numeric(exclude ...string) []string {
	var names []string
outer:
	for _, f := range s {
		if f.Kind != KindNumber {
			continue
		}
		for _, x := range exclude {
			if f.Name == x {
				continue outer
			}
		}
		names = append(names, f.Name)
	}
	return names
}

// Frame is an immutable named table with a typed schema.
type Frame struct {
	name   string
	schema Schema
	t      *table.Table
	// text holds the source cell text of numeric columns loaded from files.
	text map[string][]string
}

// Name returns the frame name, usually the source file name.
func (f *Frame) Name() string { return f.name }

// Schema returns the frame schema.
func (f *Frame) Schema() Schema { return f.schema }

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f.t == nil {
		return 0
	}
	return f.t.Len()
}

// Has reports whether the frame has a column named col.
func (f *Frame) Has(col string) bool {
	_, ok := f.schema.Lookup(col)
	return ok
}

// NumericColumns returns the numeric column names, minus exclude.
func (f *Frame) NumericColumns(exclude ...string) []string {
	return f.schema.Numeric(exclude...)
}

// Numbers returns the values of a numeric column.
func (f *Frame) Numbers(col string) ([]Number, error) {
	fld, ok := f.schema.Lookup(col)
	if !ok {
		return nil, &ColumnError{Frame: f.name, Column: col, Reason: "no such column"}
	}
	if fld.Kind != KindNumber {
		return nil, &ColumnError{Frame: f.name, Column: col, Reason: "not numeric"}
	}
	return f.t.MustColumn(col).([]Number), nil
}

// Labels returns a column as strings. Numeric cells read from a file
// keep their source text, so "001" stays "001". Other numeric cells are
// formatted in their shortest representation and null cells become "".
func (f *Frame) Labels(col string) ([]string, error) {
	fld, ok := f.schema.Lookup(col)
	if !ok {
		return nil, &ColumnError{Frame: f.name, Column: col, Reason: "no such column"}
	}
	if fld.Kind == KindString {
		return f.t.MustColumn(col).([]string), nil
	}
	if text, ok := f.text[col]; ok {
		return text, nil
	}
	nums := f.t.MustColumn(col).([]Number)
	out := make([]string, len(nums))
	for i, n := range nums {
		if n.Valid {
			out[i] = strconv.FormatFloat(n.Value, 'f', -1, 64)
		}
	}
	return out, nil
}

// Index maps each value of col to its row. Values must be unique.
func (f *Frame) Index(col string) (map[string]int, error) {
	labels, err := f.Labels(col)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(labels))
	for row, key := range labels {
		if prev, dup := idx[key]; dup {
			return nil, &DuplicateKeyError{Frame: f.name, Column: col, Key: key, Rows: [2]int{prev, row}}
		}
		idx[key] = row
	}
	return idx, nil
}

// Permute returns a new frame whose row i is row perm[i] of f.
func (f *Frame) Permute(perm []int) *Frame {
	if f.t == nil {
		return f
	}
	b := table.NewBuilder(nil)
	for _, fld := range f.schema {
		b.Add(fld.Name, slice.Select(f.t.MustColumn(fld.Name), perm))
	}
	var text map[string][]string
	if len(f.text) > 0 {
		text = make(map[string][]string, len(f.text))
		for col, cells := range f.text {
			text[col] = slice.Select(cells, perm).([]string)
		}
	}
	return &Frame{name: f.name, schema: f.schema, t: b.Done(), text: text}
}

// Number is a nullable numeric cell.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// Null is the missing Number.
var Null = Number{}

// Finite reports whether n is valid and neither NaN nor infinite.
func (n Number) Finite() bool {
	return n.Valid && !math.IsNaN(n.Value) && !math.IsInf(n.Value, 0)
}

// MarshalJSON encodes a null Number as JSON null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Floats returns the valid values of ns.
func Floats(ns []Number) []float64 {
	out := make([]float64, 0, len(ns))
	for _, n := range ns {
		if n.Valid {
			out = append(out, n.Value)
		}
	}
	return out
}
