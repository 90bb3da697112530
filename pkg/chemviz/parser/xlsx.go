package parser

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
)

// loadXLSX reads one table from a workbook. Without a Range the table
// is the bounding box of the non-empty cells of the sheet, and its
// first row is the header.
func loadXLSX(path string, opts TableOptions) (*frame.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheet = sheets[0]
	}

	var area *cellRange
	if opts.Range != "" {
		sheet, area, err = resolveReference(f, opts.Range, sheet)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%s: no sheet named %q", path, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	if area == nil {
		area = detectRange(rows)
	}
	if area == nil {
		return nil, &HeaderError{Table: tableName(path), Reason: fmt.Sprintf("sheet %q is empty", sheet)}
	}

	cells := crop(rows, *area)
	if len(cells) == 0 {
		return nil, &HeaderError{Table: tableName(path), Reason: "range has no rows"}
	}
	return buildFrame(tableName(path), cells[0], dropBlankRows(cells[1:]))
}

func tableName(path string) string {
	return filepath.Base(path)
}
