// Package metrics computes dashboard aggregates and the comparison
// channels used for side-by-side supplier views.
//
// All functions are pure and total: degenerate inputs (empty collection,
// zero baseline) resolve to defined sentinel values, never NaN or Inf.
package metrics

import (
	"fmt"
	"math"

	"canopy/internal/supplier"
)

// ---------------------------------------------------------------------------
// Dashboard KPIs
// ---------------------------------------------------------------------------

// DashboardKPIs summarizes the full supplier collection for the stat cards.
type DashboardKPIs struct {
	Count                int
	MeanScore            float64 // mean sustainability score, one decimal
	TotalWaterUsage      float64 // gallons, summed
	MeanEnergyEfficiency float64 // percent, one decimal
}

// ComputeDashboardKPIs aggregates over all suppliers, not a filtered
// view. With zero suppliers the means are reported as 0.
func ComputeDashboardKPIs(suppliers []supplier.Supplier) DashboardKPIs {
	kpis := DashboardKPIs{Count: len(suppliers)}
	if len(suppliers) == 0 {
		return kpis
	}
	var score, water, energy float64
	for _, s := range suppliers {
		score += s.SustainabilityScore
		water += s.Metrics.WaterUsage
		energy += s.Metrics.EnergyEfficiency
	}
	n := float64(len(suppliers))
	kpis.MeanScore = round1(score / n)
	kpis.TotalWaterUsage = water
	kpis.MeanEnergyEfficiency = round1(energy / n)
	return kpis
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ---------------------------------------------------------------------------
// Comparison channels
// ---------------------------------------------------------------------------

// Channel is one normalized 0-100 axis of the radar comparison. An
// explicit tag is used instead of string-keyed field access so every
// dispatch site is checked by the compiler.
type Channel int

const (
	Sustainability Channel = iota
	EnergyEfficiency
	WaterUsage
	CarbonFootprint
	RenewableEnergy
)

// Channels lists all axes in display order.
var Channels = []Channel{
	Sustainability,
	EnergyEfficiency,
	WaterUsage,
	CarbonFootprint,
	RenewableEnergy,
}

// Label returns the display name of the channel.
func (c Channel) Label() string {
	switch c {
	case Sustainability:
		return "Sustainability"
	case EnergyEfficiency:
		return "Energy Efficiency"
	case WaterUsage:
		return "Water Usage"
	case CarbonFootprint:
		return "Carbon Footprint"
	case RenewableEnergy:
		return "Renewable Energy"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Unit returns the unit suffix of the channel's raw value.
func (c Channel) Unit() string {
	switch c {
	case CarbonFootprint:
		return " tons"
	case WaterUsage:
		return " gal"
	case EnergyEfficiency, RenewableEnergy:
		return "%"
	default:
		return ""
	}
}

// Raw returns the channel's unnormalized value for a supplier.
func (c Channel) Raw(s supplier.Supplier) float64 {
	switch c {
	case Sustainability:
		return s.SustainabilityScore
	case EnergyEfficiency:
		return s.Metrics.EnergyEfficiency
	case WaterUsage:
		return s.Metrics.WaterUsage
	case CarbonFootprint:
		return s.Metrics.CarbonFootprint
	case RenewableEnergy:
		return s.Metrics.RenewableEnergy
	default:
		return 0
	}
}

// Normalized returns the channel's 0-100 radar value. Water usage and
// carbon footprint are inverted (higher raw is worse) against fixed
// scales of 2000 gallons and 400 tons; values outside those scales go
// below 0 or above 100 and are not clamped.
func (c Channel) Normalized(s supplier.Supplier) float64 {
	switch c {
	case WaterUsage:
		return 100 - (s.Metrics.WaterUsage/2000)*100
	case CarbonFootprint:
		return 100 - (s.Metrics.CarbonFootprint/400)*100
	default:
		return c.Raw(s)
	}
}

// SupplierChannels holds the normalized values for one supplier in a
// comparison, indexed in Channels order.
type SupplierChannels struct {
	SupplierID string
	Name       string
	Values     []float64
}

// ComputeComparisonChannels produces the per-supplier normalized channel
// values for a 2-3 member comparison subset. Index 0 is the baseline.
func ComputeComparisonChannels(suppliers []supplier.Supplier) []SupplierChannels {
	out := make([]SupplierChannels, len(suppliers))
	for i, s := range suppliers {
		sc := SupplierChannels{
			SupplierID: s.ID,
			Name:       s.Name,
			Values:     make([]float64, len(Channels)),
		}
		for j, c := range Channels {
			sc.Values[j] = c.Normalized(s)
		}
		out[i] = sc
	}
	return out
}

// ---------------------------------------------------------------------------
// Percentage deltas
// ---------------------------------------------------------------------------

// FormatDelta renders the signed percentage change of value against
// baseline: "+10.0%", "-10.0%", or "0%" when the change is below 0.1 in
// magnitude. A zero baseline is degenerate; the convention here is "0%"
// when the value is also zero and "n/a" otherwise, so no NaN or Inf ever
// reaches rendered output.
func FormatDelta(value, baseline float64) string {
	if baseline == 0 {
		if value == 0 {
			return "0%"
		}
		return "n/a"
	}
	diff := ((value - baseline) / baseline) * 100
	if math.Abs(diff) < 0.1 {
		return "0%"
	}
	if diff > 0 {
		return fmt.Sprintf("+%.1f%%", diff)
	}
	return fmt.Sprintf("%.1f%%", diff)
}
