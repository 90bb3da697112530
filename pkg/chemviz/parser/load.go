// Package parser loads table files into typed frames.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
)

// ErrUnsupportedFormat indicates a table file extension with no reader.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// TableOptions configures how a table file is read.
type TableOptions struct {
	// Sheet selects the workbook sheet. Defaults to the first sheet.
	Sheet string
	// Range selects a cell range or defined name inside a workbook,
	// e.g. "Data!$A$1:$F$36" or "properties".
	Range string
	// Delimiter overrides the delimiter implied by a text file extension.
	Delimiter rune
	// Encoding names the charset of a text file (e.g. "windows-1252").
	Encoding string
}

// HeaderError reports a table whose header row cannot name its columns.
type HeaderError struct {
	Table  string
	Column int // 1-based, 0 when not column specific
	Reason string
}

func (e *HeaderError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("table %s: header column %d: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("table %s: %s", e.Table, e.Reason)
}

// LoadTable reads the table stored at path. The reader is chosen by
// file extension.
func LoadTable(path string, opts TableOptions) (*frame.Frame, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, opts)
	case ".csv", ".txt":
		return loadCSV(path, ',', opts)
	case ".tsv", ".tab":
		return loadCSV(path, '\t', opts)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
}
