package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
)

// loadCSV reads a delimited text table whose first record is the header.
func loadCSV(path string, delim rune, opts TableOptions) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r, err := decodeCharset(file, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &HeaderError{Table: tableName(path), Reason: "file is empty"}
	}
	return buildFrame(tableName(path), records[0], dropBlankRows(records[1:]))
}

// decodeCharset wraps r so it yields UTF-8. Empty and UTF-8 names
// return r unchanged.
func decodeCharset(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc.NewDecoder().Reader(r), nil
}

// dropBlankRows removes rows without any non-blank cell.
func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
