package output

import "strings"

// PageSuffix is appended to the sanitized column name of a bar chart page.
const PageSuffix = "_by_compounds.html"

// SanitizeFilename keeps ASCII letters, digits, spaces and hyphens and
// replaces every other character with an underscore.
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// PageFilename returns the bar chart page name for a column.
func PageFilename(column string) string {
	return SanitizeFilename(column) + PageSuffix
}
