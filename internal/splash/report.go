package splash

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"nights/internal/layout"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// LayoutTable renders the scene as a table with one line per slot. rowNames
// label the row items by their index in the row spec.
func LayoutTable(scene layout.Scene, headerName string, rowNames []string, footerName string, filledWidth int) string {
	rows := [][]string{slotRow("header", headerName, scene.Header)}
	for i, r := range scene.Row {
		name := ""
		if idx := scene.RowItems[i]; idx < len(rowNames) {
			name = rowNames[idx]
		}
		rows = append(rows, slotRow("row["+strconv.Itoa(i)+"]", name, r))
	}
	rows = append(rows,
		slotRow("footer", footerName, scene.Footer),
		slotRow("bar", "", scene.Bar),
		slotRow("bar fill", "", scene.BarFill(filledWidth)),
	)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("SLOT", "IMAGE", "X", "Y", "W", "H").
		Rows(rows...)
	return t.String()
}

func slotRow(slot, name string, r layout.Rect) []string {
	if r.Empty() {
		name += " (skipped)"
	}
	return []string{
		slot,
		name,
		strconv.Itoa(r.X),
		strconv.Itoa(r.Y),
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Height),
	}
}
