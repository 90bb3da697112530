package frame

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Builder assembles a Frame column by column.
type Builder struct {
	name   string
	schema Schema
	cols   []interface{}
	text   map[string][]string
	rows   int
	err    error
}

// NewBuilder returns a Builder for a frame called name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, rows: -1}
}

// AddStrings appends a string column.
func (b *Builder) AddStrings(col string, values []string) *Builder {
	return b.add(Field{Name: col, Kind: KindString}, values, len(values))
}

// AddNumbers appends a numeric column.
func (b *Builder) AddNumbers(col string, values []Number) *Builder {
	return b.add(Field{Name: col, Kind: KindNumber}, values, len(values))
}

// AddNumbersText appends a numeric column together with the source
// text of each cell. Labels of the column return the text unchanged.
func (b *Builder) AddNumbersText(col string, values []Number, text []string) *Builder {
	if b.err == nil && len(text) != len(values) {
		b.err = fmt.Errorf("frame %s: column %q has %d values but %d texts", b.name, col, len(values), len(text))
		return b
	}
	b.add(Field{Name: col, Kind: KindNumber}, values, len(values))
	if b.err == nil {
		if b.text == nil {
			b.text = make(map[string][]string)
		}
		b.text[col] = text
	}
	return b
}

func (b *Builder) add(f Field, values interface{}, n int) *Builder {
	if b.err != nil {
		return b
	}
	if f.Name == "" {
		b.err = fmt.Errorf("frame %s: column %d has an empty name", b.name, len(b.schema)+1)
		return b
	}
	if _, dup := b.schema.Lookup(f.Name); dup {
		b.err = fmt.Errorf("frame %s: duplicate column %q", b.name, f.Name)
		return b
	}
	if b.rows >= 0 && n != b.rows {
		b.err = fmt.Errorf("frame %s: column %q has %d rows, want %d", b.name, f.Name, n, b.rows)
		return b
	}
	b.rows = n
	b.schema = append(b.schema, f)
	b.cols = append(b.cols, values)
	return b
}

// Done returns the built frame or the first error recorded by an Add call.
func (b *Builder) Done() (*Frame, error) {
	if b.err != nil {
		return nil, b.err
	}
	tb := table.NewBuilder(nil)
	for i, f := range b.schema {
		tb.Add(f.Name, b.cols[i])
	}
	return &Frame{name: b.name, schema: b.schema, t: tb.Done(), text: b.text}, nil
}
