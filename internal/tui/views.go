package tui

// views.go — rendering for the list surface: KPI cards, the map panel,
// the supplier list with expandable detail, and the footer.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"canopy/internal/geo"
	"canopy/internal/metrics"
	"canopy/internal/supplier"
)

// View satisfies tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view() + "\n" + m.footer()
	case modeCertForm:
		return m.certForm.view() + "\n" + m.footer()
	case modeCompare:
		return m.viewCompare() + "\n" + m.footer()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Supplier Dashboard"))
	b.WriteString("   ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewKPIs())
	b.WriteString("\n")
	b.WriteString(m.viewMap())
	b.WriteString("\n")
	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// viewKPIs renders the four stat cards, always over the full collection.
func (m Model) viewKPIs() string {
	kpis := metrics.ComputeDashboardKPIs(m.suppliers)
	cards := []struct {
		label string
		value string
		note  string
	}{
		{"Total Suppliers", fmt.Sprintf("%d", kpis.Count), "active suppliers in network"},
		{"Sustainability Score", fmt.Sprintf("%.1f", kpis.MeanScore), "average across all suppliers"},
		{"Water Usage", formatGallons(kpis.TotalWaterUsage), "gallons per month"},
		{"Energy Efficiency", fmt.Sprintf("%.1f%%", kpis.MeanEnergyEfficiency), "average efficiency rating"},
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		body := cardLabelStyle.Render(c.label) + "\n" +
			cardValueStyle.Render(c.value) + "\n" +
			dimStyle.Render(c.note)
		rendered[i] = cardStyle.Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// formatGallons compacts a gallon total for a stat card (8400 → "8.4K").
func formatGallons(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// Map projection bounds: the contiguous United States.
const (
	mapMinLat, mapMaxLat = 24.0, 50.0
	mapMinLng, mapMaxLng = -125.0, -66.0
	mapWidth             = 58
	mapHeight            = 10
)

// viewMap renders a coarse projection of the filtered suppliers.
// Unknown locations resolve to the default centroid, same as the core's
// fail-closed rule.
func (m Model) viewMap() string {
	grid := make([][]string, mapHeight)
	for y := range grid {
		grid[y] = make([]string, mapWidth)
		for x := range grid[y] {
			grid[y][x] = dimStyle.Render("·")
		}
	}
	for _, s := range m.filtered {
		c := geo.Resolve(s.Location)
		x := int((c.Lng - mapMinLng) / (mapMaxLng - mapMinLng) * float64(mapWidth-1))
		y := int((mapMaxLat - c.Lat) / (mapMaxLat - mapMinLat) * float64(mapHeight-1))
		if x < 0 || x >= mapWidth || y < 0 || y >= mapHeight {
			continue
		}
		grid[y][x] = scoreStyle(s.SustainabilityScore).Render("●")
	}
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("● marker color = sustainability score band"))
	return cardStyle.Render(b.String())
}

// viewList renders the filtered supplier rows, expanding the detail
// panels under the expanded supplier.
func (m Model) viewList() string {
	if len(m.filtered) == 0 {
		return dimStyle.Render("  no suppliers match the current search")
	}
	var b strings.Builder
	for i, s := range m.filtered {
		b.WriteString(m.viewRow(i, s))
		if m.expandedID == s.ID {
			b.WriteString(m.viewDetail(s))
		}
	}
	return b.String()
}

// viewRow renders one collapsed supplier line.
func (m Model) viewRow(i int, s supplier.Supplier) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}
	check := "[ ]"
	if m.sel.Contains(s.ID) {
		check = selectedStyle.Render("[✓]")
	}
	name := s.Name
	if i == m.cursor {
		name = cursorStyle.Render(name)
	}
	return fmt.Sprintf("%s%s %s  %s  %s\n",
		cursor, check, name,
		dimStyle.Render(s.Location),
		scoreStyle(s.SustainabilityScore).Render(fmt.Sprintf("%.0f", s.SustainabilityScore)))
}

// viewDetail renders the expanded panels: metrics, certifications, risk.
func (m Model) viewDetail(s supplier.Supplier) string {
	metricsPanel := fmt.Sprintf(
		"%s\n carbon footprint  %8.1f tons\n waste output      %8.1f tons\n energy efficiency %8.1f%%\n water usage       %8.1f gal\n renewable energy  %8.1f%%",
		cardLabelStyle.Render("Environmental Metrics"),
		s.Metrics.CarbonFootprint,
		s.Metrics.WasteOutput,
		s.Metrics.EnergyEfficiency,
		s.Metrics.WaterUsage,
		s.Metrics.RenewableEnergy,
	)

	var certs strings.Builder
	certs.WriteString(cardLabelStyle.Render("Certifications"))
	certs.WriteString(dimStyle.Render("  (1-9 toggle, n new)"))
	if len(s.Certifications) == 0 {
		certs.WriteString("\n " + dimStyle.Render("none"))
	}
	for i, c := range s.Certifications {
		certs.WriteString(fmt.Sprintf("\n %d. %s %s — %s, expires %s",
			i+1,
			certStyle(c.Status).Render(statusMarker(c.Status)),
			c.Name, c.Issuer, c.ExpiryDate))
	}

	var risks strings.Builder
	risks.WriteString(cardLabelStyle.Render("Risk Assessment"))
	risks.WriteString(dimStyle.Render("  (z/x/v cycle)"))
	for _, row := range []struct {
		label string
		cat   supplier.RiskCategory
	}{
		{"compliance", supplier.RiskCompliance},
		{"environmental", supplier.RiskEnvironmental},
		{"supply chain", supplier.RiskSupplyChain},
	} {
		level := m.risks.Level(s.ID, row.cat)
		risks.WriteString(fmt.Sprintf("\n %-14s %s", row.label, riskStyle(level).Render(string(level))))
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(metricsPanel),
		cardStyle.Render(certs.String()),
		cardStyle.Render(risks.String()),
	)
	return panels + "\n"
}

// statusMarker renders a certification status as a single glyph.
func statusMarker(s supplier.CertStatus) string {
	switch s {
	case supplier.StatusActive:
		return "✓"
	case supplier.StatusExpired:
		return "✗"
	default:
		return "…"
	}
}

// footer renders the status line, the compare prompt, and key help.
func (m Model) footer() string {
	var b strings.Builder
	if m.sel.CanCompare() && m.mode == modeList {
		b.WriteString(selectedStyle.Render(fmt.Sprintf("compare %d suppliers — press c", m.sel.Len())))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
