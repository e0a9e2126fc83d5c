package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kingrea/paranoia/internal/organize"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable renders the full organization as a bordered text table.
// This reveals every secret at once; callers confirm before printing it.
func RenderTable(specs []organize.FieldSpec, t organize.Table) string {
	headers, rows := tableCells(specs, t)
	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return rendered.String()
}

// tableCells flattens the table into header and cell strings: the ID,
// the player field under its declared name, the target, then one column
// per remaining field in declaration order.
func tableCells(specs []organize.FieldSpec, t organize.Table) ([]string, [][]string) {
	playerName := "name"
	var auxNames []string
	for _, spec := range specs {
		if spec.IsPlayer {
			playerName = spec.Name
		} else {
			auxNames = append(auxNames, spec.Name)
		}
	}

	headers := append([]string{"id", playerName, "target"}, auxNames...)
	rows := make([][]string, len(t))
	for i, row := range t {
		cells := make([]string, 0, 3+len(row.Values))
		cells = append(cells, strconv.Itoa(row.ID), row.Player, row.Target)
		cells = append(cells, row.Values...)
		rows[i] = cells
	}
	return headers, rows
}
