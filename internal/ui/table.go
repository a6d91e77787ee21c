package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tableCellMaxWidth = 50
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

var cellNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// TableBuilder collects rows and renders them as left-aligned columns
// separated by two spaces. The last column is not padded.
type TableBuilder struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableBuilder returns a builder with room for capacity rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	builder := &TableBuilder{rows: make([][]string, 0, capacity)}
	builder.headers = builder.measure(headers)
	return builder
}

// AddRow appends a row. Line breaks and tabs in cells become spaces.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, builder.measure(row))
}

func (builder *TableBuilder) measure(row []string) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cellNewlines.Replace(cell)
		if i >= len(builder.widths) {
			builder.widths = append(builder.widths, 0)
		}
		builder.widths[i] = max(builder.widths[i], displayWidth(cells[i]))
	}
	return cells
}

// String renders the table, headers first.
func (builder *TableBuilder) String() string {
	var out strings.Builder
	if len(builder.headers) > 0 {
		builder.writeRow(&out, builder.headers)
	}
	for _, row := range builder.rows {
		builder.writeRow(&out, row)
	}
	return out.String()
}

func (builder *TableBuilder) writeRow(out *strings.Builder, row []string) {
	for i, cell := range row {
		out.WriteString(cell)
		if i < len(row)-1 {
			out.WriteString(strings.Repeat(" ", builder.widths[i]-displayWidth(cell)+tableColumnGap))
		}
	}
	out.WriteByte('\n')
}

// FormatTable renders headers and rows in one call.
func FormatTable(headers []string, rows [][]string) string {
	builder := NewTableBuilder(headers, len(rows))
	for _, row := range rows {
		builder.AddRow(row)
	}
	return builder.String()
}

// TruncateTableCell limits cell width while preserving escape sequences.
func TruncateTableCell(value string) string {
	return TruncateCell(value, tableCellMaxWidth)
}

// TruncateCell limits value to max display columns, ending in "..." when
// anything was cut. Escape sequences do not count toward the width.
func TruncateCell(value string, max int) string {
	value = cellNewlines.Replace(value)
	if displayWidth(value) <= max {
		return value
	}
	if max <= len(tableCellEllipsis) {
		return tableCellEllipsis
	}
	return truncate.StringWithTail(value, uint(max), tableCellEllipsis)
}

func displayWidth(value string) int {
	return ansi.PrintableRuneWidth(value)
}
