package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange holds cell coordinate bounds (1-based, inclusive).
type cellRange struct {
	R1, C1, R2, C2 int
}

// findDataBounds finds the bounding box of non-empty cells.
// Coordinates are 0-based; minRow is -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// detectRange returns the range spanned by the non-empty cells of rows,
// or nil for a blank sheet.
func detectRange(rows [][]string) *cellRange {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}
	return &cellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
}

// crop returns the cells of rows inside r, padding short rows with "".
func crop(rows [][]string, r cellRange) [][]string {
	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, r.C2-r.C1+1)
		for colIdx := r.C1 - 1; colIdx < r.C2 && colIdx < len(row); colIdx++ {
			cells[colIdx-r.C1+1] = row[colIdx]
		}
		out = append(out, cells)
	}
	return out
}

// resolveReference resolves a table reference to a sheet and a range.
// ref is either a workbook defined name, a qualified range like
// 'Sheet 1'!$A$1:$D$10, or a plain range like A1:D10 on defaultSheet.
func resolveReference(f *excelize.File, ref, defaultSheet string) (string, *cellRange, error) {
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, ref) {
			return parseReference(dn.RefersTo, defaultSheet)
		}
	}
	return parseReference(ref, defaultSheet)
}

// parseReference parses a range reference string.
// Format: 'SheetName'!$A$1:$D$10, SheetName!$A$1:$D$10 or $A$1:$D$10
func parseReference(ref, defaultSheet string) (string, *cellRange, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if strings.Contains(ref, ",") {
		return "", nil, fmt.Errorf("range %q: multiple areas are not supported", ref)
	}

	sheet := defaultSheet
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area := parseRangeToArea(rangeStr)
	if area == nil {
		return "", nil, fmt.Errorf("range %q: not a cell range", ref)
	}
	return sheet, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) *cellRange {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return &cellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}
