package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/toolip/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SiteTableColumns returns the columns of `toolip sites list`.
func SiteTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Title", Width: 24},
		{Title: "URL", Width: 40},
		{Title: "Category", Width: 14},
		{Title: "ID", Width: 26},
	}
}

// SiteRows converts sites to table rows. Positions are 1-based for display.
func SiteRows(sites entity.SiteList) []table.Row {
	rows := make([]table.Row, len(sites))
	for i, s := range sites {
		category := s.Category
		if category == "" {
			category = "-"
		}
		rows[i] = table.Row{strconv.Itoa(i + 1), s.Title, s.URL, category, string(s.ID)}
	}
	return rows
}

// RenderSiteTable renders sites as a static table for non-interactive output.
func RenderSiteTable(theme *Theme, sites entity.SiteList) string {
	columns := SiteTableColumns()
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}

	t := NewStyledTable(theme, columns, SiteRows(sites), width, len(sites)+1)
	t.Blur()
	return t.View()
}
