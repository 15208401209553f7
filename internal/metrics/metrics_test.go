package metrics

// metrics_test.go — KPI aggregation, channel normalization, and delta
// formatting, including the degenerate empty/zero-baseline cases.

import (
	"math"
	"testing"

	"canopy/internal/supplier"
)

// withMetrics builds a supplier fixture with the given measurements.
func withMetrics(id string, score float64, m supplier.EnvironmentalMetrics) supplier.Supplier {
	return supplier.Supplier{ID: id, Name: "Supplier " + id, SustainabilityScore: score, Metrics: m}
}

// ---------------------------------------------------------------------------
// Dashboard KPIs
// ---------------------------------------------------------------------------

// TestComputeDashboardKPIs_Empty verifies the degenerate empty state:
// count 0 and defined, non-NaN means.
func TestComputeDashboardKPIs_Empty(t *testing.T) {
	kpis := ComputeDashboardKPIs(nil)

	if kpis.Count != 0 {
		t.Errorf("Count = %d, want 0", kpis.Count)
	}
	if kpis.MeanScore != 0 {
		t.Errorf("MeanScore = %v, want 0", kpis.MeanScore)
	}
	if math.IsNaN(kpis.MeanScore) || math.IsNaN(kpis.MeanEnergyEfficiency) {
		t.Error("empty collection produced NaN")
	}
}

// TestComputeDashboardKPIs verifies count, one-decimal mean rounding,
// and the aggregate water and efficiency figures.
func TestComputeDashboardKPIs(t *testing.T) {
	suppliers := []supplier.Supplier{
		withMetrics("1", 92, supplier.EnvironmentalMetrics{WaterUsage: 1000, EnergyEfficiency: 80}),
		withMetrics("2", 85, supplier.EnvironmentalMetrics{WaterUsage: 2000, EnergyEfficiency: 70}),
		withMetrics("3", 78, supplier.EnvironmentalMetrics{WaterUsage: 500, EnergyEfficiency: 75}),
	}

	kpis := ComputeDashboardKPIs(suppliers)
	if kpis.Count != 3 {
		t.Errorf("Count = %d, want 3", kpis.Count)
	}
	if kpis.MeanScore != 85.0 {
		t.Errorf("MeanScore = %v, want 85.0", kpis.MeanScore)
	}
	if kpis.TotalWaterUsage != 3500 {
		t.Errorf("TotalWaterUsage = %v, want 3500", kpis.TotalWaterUsage)
	}
	if kpis.MeanEnergyEfficiency != 75.0 {
		t.Errorf("MeanEnergyEfficiency = %v, want 75.0", kpis.MeanEnergyEfficiency)
	}
}

// TestComputeDashboardKPIs_Rounding verifies the mean is rounded to one
// decimal place.
func TestComputeDashboardKPIs_Rounding(t *testing.T) {
	suppliers := []supplier.Supplier{
		withMetrics("1", 92, supplier.EnvironmentalMetrics{}),
		withMetrics("2", 85, supplier.EnvironmentalMetrics{}),
		withMetrics("3", 78, supplier.EnvironmentalMetrics{}),
		withMetrics("4", 95, supplier.EnvironmentalMetrics{}),
		withMetrics("5", 88, supplier.EnvironmentalMetrics{}),
	}

	kpis := ComputeDashboardKPIs(suppliers)
	if kpis.MeanScore != 87.6 {
		t.Errorf("MeanScore = %v, want 87.6", kpis.MeanScore)
	}
}

// ---------------------------------------------------------------------------
// Channel normalization
// ---------------------------------------------------------------------------

// TestChannelNormalized covers the inverted water and carbon scales,
// including unclamped values outside 0-100.
func TestChannelNormalized(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		metrics supplier.EnvironmentalMetrics
		score   float64
		want    float64
	}{
		{"water midpoint", WaterUsage, supplier.EnvironmentalMetrics{WaterUsage: 1000}, 0, 50},
		{"water at scale", WaterUsage, supplier.EnvironmentalMetrics{WaterUsage: 2000}, 0, 0},
		{"water zero", WaterUsage, supplier.EnvironmentalMetrics{WaterUsage: 0}, 0, 100},
		{"water beyond scale goes negative", WaterUsage, supplier.EnvironmentalMetrics{WaterUsage: 3000}, 0, -50},
		{"carbon midpoint", CarbonFootprint, supplier.EnvironmentalMetrics{CarbonFootprint: 200}, 0, 50},
		{"carbon at scale", CarbonFootprint, supplier.EnvironmentalMetrics{CarbonFootprint: 400}, 0, 0},
		{"carbon zero", CarbonFootprint, supplier.EnvironmentalMetrics{CarbonFootprint: 0}, 0, 100},
		{"sustainability passthrough", Sustainability, supplier.EnvironmentalMetrics{}, 92, 92},
		{"energy passthrough", EnergyEfficiency, supplier.EnvironmentalMetrics{EnergyEfficiency: 76.2}, 0, 76.2},
		{"renewable passthrough", RenewableEnergy, supplier.EnvironmentalMetrics{RenewableEnergy: 45.9}, 0, 45.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := withMetrics("1", tt.score, tt.metrics)
			if got := tt.channel.Normalized(s); got != tt.want {
				t.Errorf("Normalized = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestComputeComparisonChannels verifies each supplier yields one value
// per channel, in Channels order.
func TestComputeComparisonChannels(t *testing.T) {
	subset := []supplier.Supplier{
		withMetrics("1", 92, supplier.EnvironmentalMetrics{WaterUsage: 1000, CarbonFootprint: 200, EnergyEfficiency: 80, RenewableEnergy: 70}),
		withMetrics("2", 85, supplier.EnvironmentalMetrics{WaterUsage: 2000, CarbonFootprint: 400, EnergyEfficiency: 60, RenewableEnergy: 50}),
	}

	got := ComputeComparisonChannels(subset)
	if len(got) != 2 {
		t.Fatalf("got %d supplier channel sets, want 2", len(got))
	}
	if got[0].SupplierID != "1" || got[1].SupplierID != "2" {
		t.Error("channel sets out of order")
	}
	// Channels order: sustainability, energy, water, carbon, renewable.
	want0 := []float64{92, 80, 50, 50, 70}
	for i, v := range want0 {
		if got[0].Values[i] != v {
			t.Errorf("supplier 1 channel %s = %v, want %v", Channels[i].Label(), got[0].Values[i], v)
		}
	}
	want1 := []float64{85, 60, 0, 0, 50}
	for i, v := range want1 {
		if got[1].Values[i] != v {
			t.Errorf("supplier 2 channel %s = %v, want %v", Channels[i].Label(), got[1].Values[i], v)
		}
	}
}

// ---------------------------------------------------------------------------
// Delta formatting
// ---------------------------------------------------------------------------

// TestFormatDelta covers signs, the unchanged threshold, and the
// zero-baseline convention.
func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		baseline float64
		want     string
	}{
		{"positive", 110, 100, "+10.0%"},
		{"negative", 90, 100, "-10.0%"},
		{"below threshold", 100.05, 100, "0%"},
		{"just under threshold negative", 99.95, 100, "0%"},
		{"equal", 100, 100, "0%"},
		{"fractional", 112.5, 100, "+12.5%"},
		{"zero baseline zero value", 0, 0, "0%"},
		{"zero baseline nonzero value", 50, 0, "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDelta(tt.value, tt.baseline); got != tt.want {
				t.Errorf("FormatDelta(%v, %v) = %q, want %q", tt.value, tt.baseline, got, tt.want)
			}
		})
	}
}
