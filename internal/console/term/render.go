package term

import (
	"fmt"
	"strings"

	"groupadmin/server/internal/console"
	"groupadmin/server/internal/i18n"
	"groupadmin/server/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable draws the group table with its header, selection alert and
// pagination footer
func RenderTable(t *console.Table) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T(i18n.HeaderTitle)))
	b.WriteString("\n")

	if summary := t.Summary(); summary.Count > 0 {
		b.WriteString(alertStyle.Render(summary.Text()))
		b.WriteString("\n")
	}

	b.WriteString(RenderRows(t.Rows(), t.IsSelected))
	b.WriteString("\n")

	p := t.Pagination()
	footer := fmt.Sprintf("%d / %d", p.Current, pages(p))
	if sorter := t.Sorter(); sorter != "" {
		footer += "  " + sorter
	}
	b.WriteString(mutedStyle.Render(footer))

	return b.String()
}

// RenderRows draws rows as a lipgloss table. selected, when not nil, marks
// rows with a leading check.
func RenderRows(rows []models.Group, selected func(id string) bool) string {
	cols := console.Columns()

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "")
	for _, c := range cols {
		headers = append(headers, c.Title)
	}

	statuses := make([][]console.Status, len(rows))
	cells := make([][]string, len(rows))
	for i, g := range rows {
		mark := " "
		if selected != nil && selected(g.ID) {
			mark = "✓"
		}

		cells[i] = append(cells[i], mark)
		statuses[i] = append(statuses[i], "")
		for _, c := range cols {
			text, status := c.Render(g)
			cells[i] = append(cells[i], text)
			statuses[i] = append(statuses[i], status)
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(statuses) || col >= len(statuses[row]) {
				return cellStyle
			}
			return statusStyle(statuses[row][col])
		}).
		String()
}

func pages(p models.Pagination) int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
