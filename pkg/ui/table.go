package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column alignments
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int    // minimum width
	Align  string // AlignLeft or AlignRight
}

// Table is a plain text table with an optional footer row
type Table struct {
	Columns []TableColumn
	Rows    [][]string
	Footer  []string
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// SetFooter sets a row rendered below a separator, e.g. totals
func (t *Table) SetFooter(cells []string) {
	t.Footer = cells
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.widths()
	separator := StyleTableBorder.Render(t.separator(widths))

	var b strings.Builder

	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	b.WriteString(StyleTableHeader.Render(t.line(headers, widths)))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for idx, row := range t.Rows {
		style := StyleTableRow
		if idx%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(t.line(row, widths)))
		b.WriteString("\n")
	}

	if t.Footer != nil {
		b.WriteString(separator)
		b.WriteString("\n")
		b.WriteString(StyleBold.Render(t.line(t.Footer, widths)))
		b.WriteString("\n")
	}

	return b.String()
}

// widths computes each column width from headers, cells and minimums
func (t *Table) widths() []int {
	widths := make([]int, len(t.Columns))
	fit := func(cells []string) {
		for i, cell := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		fit(row)
	}
	fit(t.Footer)

	return widths
}

func (t *Table) line(cells []string, widths []int) string {
	parts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = pad(cell, widths[i], col.Align)
	}
	return strings.Join(parts, "  ")
}

func (t *Table) separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "  ")
}

// pad pads s to width, right-aligning when align is AlignRight
func pad(s string, width int, align string) string {
	padding := width - lipgloss.Width(s)
	if padding <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", padding) + s
	}
	return s + strings.Repeat(" ", padding)
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", StyleAccent.Render(key), value)
}
