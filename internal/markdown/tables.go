// Package markdown post-processes model-generated markdown: it repairs
// tables that are missing their separator row, strips bold markup out of
// table cells, and soft-wraps long prose lines.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// tableRowRe matches a pipe-delimited table row: "| cell | cell |".
	tableRowRe = regexp.MustCompile(`^\s*\|.*\|\s*$`)

	// separatorRe matches a valid header separator row, with optional
	// alignment colons: "|---|:---:|".
	separatorRe = regexp.MustCompile(`^\s*\|(\s*:?-+:?\s*\|)+\s*$`)

	// boldSpanRe matches a single **bold** span.
	boldSpanRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// isTableRow reports whether line is a complete pipe-delimited row.
func isTableRow(line string) bool {
	return tableRowRe.MatchString(line)
}

// isSeparatorRow reports whether line is a valid header separator.
func isSeparatorRow(line string) bool {
	return separatorRe.MatchString(line)
}

// columnCount counts the cells of a table row, discarding the empty
// fragments outside the boundary pipes.
func columnCount(line string) int {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return len(parts)
}

// separatorFor synthesizes a separator row with cols dash groups.
func separatorFor(cols int) string {
	return strings.Repeat("|---", cols) + "|"
}

// RepairTables ensures every table header row is followed by a valid
// separator row. A table row opens a table when the preceding non-blank line
// is not itself a table row; if the next non-blank line is not a valid
// separator, one matching the header's column count is inserted after any
// intervening blank lines (which stay in place). A header that ends the text
// gets the separator appended. Tables that already carry a valid separator
// are left untouched, so the repair is idempotent.
func RepairTables(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+4)

	inTable := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		out = append(out, line)

		if strings.TrimSpace(line) == "" {
			inTable = false
			continue
		}

		isRow := isTableRow(line)
		header := isRow && !isSeparatorRow(line) && !inTable
		inTable = isRow

		if !header {
			continue
		}

		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j < len(lines) && isSeparatorRow(lines[j]) {
			continue
		}

		out = append(out, lines[i+1:j]...)
		out = append(out, separatorFor(columnCount(line)))
		i = j - 1
	}

	return strings.Join(out, "\n")
}

// StripCellBold removes every **bold** span from table rows, leaving the
// inner text unwrapped. Separator rows and prose outside tables are
// untouched byte-for-byte.
func StripCellBold(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "|") || isSeparatorRow(line) {
			continue
		}
		for boldSpanRe.MatchString(line) {
			line = boldSpanRe.ReplaceAllString(line, "$1")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
