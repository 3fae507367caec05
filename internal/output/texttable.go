package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// alignment controls how a column's content is justified.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// column describes a single table column. color, when set, maps the raw
// cell value to its displayed form.
type column struct {
	header string
	align  alignment
	color  func(value string) string
}

// textTable renders aligned text tables to an io.Writer.
type textTable struct {
	columns []column
	rows    [][]string
}

func newTextTable(columns ...column) *textTable {
	return &textTable{columns: columns}
}

// addRow appends a row. Values beyond the column count are ignored; missing
// values are empty.
func (t *textTable) addRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// render writes the table to w with computed column widths.
func (t *textTable) render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.header, widths[i], col.align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeRow(w, header); err != nil {
		return err
	}
	if err := writeRow(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			// Padding is based on raw value length, not ANSI-colored length.
			padded := pad(row[i], widths[i], col.align)
			if col.color != nil {
				padded = strings.Replace(padded, row[i], col.color(row[i]), 1)
			}
			parts[i] = padded
		}
		if err := writeRow(w, parts); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int, align alignment) string {
	fill := strings.Repeat(" ", max(0, width-len(s)))
	if align == alignRight {
		return fill + s
	}
	return s + fill
}

func writeRow(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
