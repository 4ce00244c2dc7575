package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table renders static rows as aligned columns. Styles are resolved against
// the target writer, so piped output carries no escape codes.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{
		headers: headers,
		rows:    make([][]string, 0),
	}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(out io.Writer) error {
	renderer := lipgloss.NewRenderer(out)
	headerStyle := renderer.NewStyle().Bold(true)
	cellStyle := renderer.NewStyle()

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder
	writeRow := func(style lipgloss.Style, cells []string) {
		for i, cell := range cells {
			if i >= len(colWidths) {
				break
			}
			if i < len(colWidths)-1 {
				// two spaces between columns
				sb.WriteString(style.Width(colWidths[i] + 2).Render(cell))
			} else {
				sb.WriteString(style.Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headerStyle, t.headers)
	for _, row := range t.rows {
		writeRow(cellStyle, row)
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
