package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/paranoia/internal/organize"
)

var viewerFrameStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type tableViewModel struct {
	table table.Model
}

func (m tableViewModel) Init() tea.Cmd { return nil }

func (m tableViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tableViewModel) View() string {
	return viewerFrameStyle.Render(m.table.View()) + "\n" +
		hintStyle.Render("  ↑/↓ scroll · q quit") + "\n"
}

// ShowTable opens an interactive, scrollable view of the organization.
// Like RenderTable it shows everything, so callers gate it behind a
// confirmation.
func ShowTable(specs []organize.FieldSpec, t organize.Table) error {
	headers, rows := tableCells(specs, t)

	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		columns[i] = table.Column{Title: header, Width: columnWidth(header, rows, i)}
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	height := len(tableRows)
	if height > 20 {
		height = 20
	}
	model := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F7B801")).Bold(true)
	model.SetStyles(styles)

	program := tea.NewProgram(tableViewModel{table: model}, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: table viewer: %w", err)
	}
	return nil
}

func columnWidth(header string, rows [][]string, col int) int {
	width := len(header)
	for _, row := range rows {
		if len(row[col]) > width {
			width = len(row[col])
		}
	}
	return width + 2
}
