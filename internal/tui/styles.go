package tui

// styles.go — lipgloss styles shared across views.

import (
	"github.com/charmbracelet/lipgloss"

	"canopy/internal/supplier"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2)

	certActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	certExpiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	certPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// compareColors are the per-supplier accent colors in a comparison,
// index-aligned with the compared subset.
var compareColors = []lipgloss.Color{
	lipgloss.Color("42"),  // green
	lipgloss.Color("39"),  // blue
	lipgloss.Color("214"), // amber
}

// scoreStyle colors a sustainability score by band: 90+ green down to
// <60 red.
func scoreStyle(score float64) lipgloss.Style {
	var c lipgloss.Color
	switch {
	case score >= 90:
		c = lipgloss.Color("42")
	case score >= 80:
		c = lipgloss.Color("112")
	case score >= 70:
		c = lipgloss.Color("220")
	case score >= 60:
		c = lipgloss.Color("208")
	default:
		c = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// riskStyle colors a risk level: Low green, Medium yellow, High red.
func riskStyle(level supplier.RiskLevel) lipgloss.Style {
	var c lipgloss.Color
	switch level {
	case supplier.RiskLow:
		c = lipgloss.Color("42")
	case supplier.RiskMedium:
		c = lipgloss.Color("220")
	case supplier.RiskHigh:
		c = lipgloss.Color("196")
	default:
		c = lipgloss.Color("243")
	}
	return lipgloss.NewStyle().Foreground(c)
}

// certStyle colors a certification status marker.
func certStyle(status supplier.CertStatus) lipgloss.Style {
	switch status {
	case supplier.StatusActive:
		return certActiveStyle
	case supplier.StatusExpired:
		return certExpiredStyle
	default:
		return certPendingStyle
	}
}
