package frame

import "fmt"

// ColumnError reports an unusable column reference.
type ColumnError struct {
	Frame  string
	Column string
	Reason string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("table %s: column %q: %s", e.Frame, e.Column, e.Reason)
}

// DuplicateKeyError reports an identifier that occurs on more than one row.
type DuplicateKeyError struct {
	Frame  string
	Column string
	Key    string
	// Rows holds the 0-based rows of the first two occurrences.
	Rows [2]int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("table %s: duplicate key %q in column %q (rows %d and %d)",
		e.Frame, e.Key, e.Column, e.Rows[0]+1, e.Rows[1]+1)
}
