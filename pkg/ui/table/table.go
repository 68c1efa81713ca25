// Package table renders rows of values as a terminal table with lipgloss,
// or as plain tab-separated text when the output is not a terminal.
package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is implemented by anything rendered as a table
type Data interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cell values for row i, or nil to skip the row
	Row(i int) []any
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle()
	borderStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table with a rounded border, narrowed to width when
// the natural rendering is wider. A width of zero leaves it unconstrained.
func Render(data Data, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range rows(data) {
		t.Row(row...)
	}

	result := t.Render()
	if width > 0 && lipgloss.Width(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// RenderText returns the table as tab-separated lines with a header line
func RenderText(data Data) string {
	var buf strings.Builder
	buf.WriteString(strings.Join(data.Header(), "\t"))
	for _, row := range rows(data) {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(row, "\t"))
	}
	return buf.String()
}

// FormatCell converts a value to a display string. Empty and zero values
// are shown as "-".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case time.Time:
		if val.IsZero() {
			return "-"
		}
		return val.Format("2006-01-02 15:04")
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		if val == 0 {
			return "-"
		}
		return strconv.Itoa(val)
	case uint:
		if val == 0 {
			return "-"
		}
		return strconv.FormatUint(uint64(val), 10)
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if max < 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func rows(data Data) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		result = append(result, cells)
	}
	return result
}
