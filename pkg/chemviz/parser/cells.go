package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
)

// naValues are cell texts read as missing, following the usual
// spreadsheet and dataframe exports.
var naValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"#N/A": true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
}

// buildFrame turns a header row and raw data rows into a typed frame.
// A column is numeric when it holds at least one number and none of its
// non-missing cells is text. Numeric columns keep their cell text so that
// identifiers such as "001" survive as labels.
func buildFrame(name string, header []string, rows [][]string) (*frame.Frame, error) {
	names, err := headerNames(name, header)
	if err != nil {
		return nil, err
	}

	b := frame.NewBuilder(name)
	for col, colName := range names {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if col < len(row) {
				cells[i] = strings.TrimSpace(row[col])
			}
		}

		if nums, ok := parseNumbers(cells); ok {
			b.AddNumbersText(colName, nums, numberText(cells))
		} else {
			b.AddStrings(colName, cells)
		}
	}
	return b.Done()
}

// headerNames validates the header row.
func headerNames(name string, header []string) ([]string, error) {
	if len(header) == 0 {
		return nil, &HeaderError{Table: name, Reason: "no header row"}
	}
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			return nil, &HeaderError{Table: name, Column: i + 1, Reason: "empty column name"}
		}
		if prev, dup := seen[h]; dup {
			return nil, &HeaderError{Table: name, Column: i + 1,
				Reason: fmt.Sprintf("column name %q repeats column %d", h, prev)}
		}
		seen[h] = i + 1
		names[i] = h
	}
	return names, nil
}

// parseNumbers converts cells to numbers, reporting false as soon as a
// text cell is found or when no cell holds a number.
func parseNumbers(cells []string) ([]frame.Number, bool) {
	nums := make([]frame.Number, len(cells))
	valid := 0
	for i, c := range cells {
		if naValues[c] {
			continue
		}
		switch v := parseValue(c).(type) {
		case int64:
			nums[i] = frame.Num(float64(v))
		case float64:
			nums[i] = frame.Num(v)
		default:
			return nil, false
		}
		valid++
	}
	return nums, valid > 0
}

// numberText returns the labels of a numeric column: the cell text, with
// missing cells blanked.
func numberText(cells []string) []string {
	text := make([]string, len(cells))
	for i, c := range cells {
		if !naValues[c] {
			text[i] = c
		}
	}
	return text
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
