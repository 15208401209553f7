package tui

// compare.go — side-by-side comparison modal: raw metric table with
// deltas against the baseline (the first-selected supplier), a bar
// rendering of the normalized radar channels, and JSON export.

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"canopy/internal/export"
	"canopy/internal/metrics"
	"canopy/internal/supplier"
)

// compareState holds the compared subset and its rendered table.
type compareState struct {
	suppliers []supplier.Supplier // selection order; index 0 is baseline
	channels  []metrics.SupplierChannels
	table     table.Model
}

// openCompare snapshots the selected suppliers and enters compare mode.
// Selection order is kept so the baseline is the first-selected supplier.
func (m *Model) openCompare() {
	var subset []supplier.Supplier
	for _, id := range m.sel.IDs() {
		if s, ok := supplier.Find(m.suppliers, id); ok {
			subset = append(subset, s)
		}
	}
	if len(subset) < 2 {
		m.setError("select at least 2 suppliers to compare")
		return
	}
	m.compare = &compareState{
		suppliers: subset,
		channels:  metrics.ComputeComparisonChannels(subset),
		table:     buildCompareTable(subset),
	}
	m.mode = modeCompare
}

// buildCompareTable lays out one row per channel, one column per
// supplier. Non-baseline cells carry the formatted delta.
func buildCompareTable(subset []supplier.Supplier) table.Model {
	cols := []table.Column{{Title: "Metric", Width: 20}}
	for _, s := range subset {
		cols = append(cols, table.Column{Title: s.Name, Width: 26})
	}

	var rows []table.Row
	for _, c := range metrics.Channels {
		row := table.Row{c.Label()}
		base := c.Raw(subset[0])
		for i, s := range subset {
			cell := fmt.Sprintf("%.1f%s", c.Raw(s), c.Unit())
			if i > 0 {
				cell += "  " + metrics.FormatDelta(c.Raw(s), base)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell // no row selection in a read-only table
	t.SetStyles(styles)
	return t
}

// updateCompare handles keys while the comparison modal is open.
func (m Model) updateCompare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "c":
		// Dismissing the comparison clears the selection.
		m.compare = nil
		m.sel = m.sel.Clear()
		m.mode = modeList
		return m, nil
	case "x":
		doc := export.Generate(m.compare.suppliers, time.Now())
		if err := export.Write(doc, export.DefaultFilename); err != nil {
			m.setError("export failed: %v", err)
			return m, nil
		}
		m.setStatus("exported comparison to %s", export.DefaultFilename)
		return m, nil
	}
	var cmd tea.Cmd
	m.compare.table, cmd = m.compare.table.Update(msg)
	return m, cmd
}

// viewCompare renders the comparison modal.
func (m Model) viewCompare() string {
	c := m.compare
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Supplier Comparison (%d)", len(c.suppliers))))
	b.WriteString("\n\n")

	// Legend, color-matched to the bars below.
	var legend []string
	for i, s := range c.suppliers {
		style := lipgloss.NewStyle().Foreground(compareColors[i%len(compareColors)])
		legend = append(legend, style.Render("■ "+s.Name))
	}
	b.WriteString(strings.Join(legend, "   "))
	b.WriteString("\n\n")

	b.WriteString(c.table.View())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Performance Overview"))
	b.WriteString("\n\n")
	b.WriteString(renderChannelBars(c.channels))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("x export · esc close"))
	return modalStyle.Render(b.String())
}

// renderChannelBars draws each normalized channel as one bar per
// supplier on a 0-100 scale. Out-of-range values (the inverted channels
// are unclamped) are truncated for display only.
func renderChannelBars(channels []metrics.SupplierChannels) string {
	const barWidth = 40
	var b strings.Builder
	for i, ch := range metrics.Channels {
		b.WriteString(cardLabelStyle.Render(ch.Label()))
		b.WriteString("\n")
		for j, sc := range channels {
			v := sc.Values[i]
			filled := int(v / 100 * barWidth)
			if filled < 0 {
				filled = 0
			}
			if filled > barWidth {
				filled = barWidth
			}
			style := lipgloss.NewStyle().Foreground(compareColors[j%len(compareColors)])
			bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
			b.WriteString(fmt.Sprintf("  %s %6.1f\n", style.Render(bar), v))
		}
	}
	return b.String()
}
