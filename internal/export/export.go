// Package export serializes a comparison subset to a downloadable
// document.
//
// Generate is pure (no I/O) so the document shape is testable; Write
// performs the file write. The document consumes exactly the metrics
// package's comparison output: normalized channel values in Channels
// order plus formatted deltas against the baseline supplier.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"canopy/internal/metrics"
	"canopy/internal/supplier"
)

// DefaultFilename is where comparison exports land.
const DefaultFilename = "supplier-comparison.json"

// ComparisonDocument is the root of the exported JSON.
type ComparisonDocument struct {
	Date      string             `json:"date"`
	Channels  []string           `json:"channels"`
	Suppliers []SupplierSnapshot `json:"suppliers"`
}

// SupplierSnapshot is one compared supplier: raw figures plus the
// normalized channel values and deltas the comparison view showed.
type SupplierSnapshot struct {
	Name                string            `json:"name"`
	SustainabilityScore float64           `json:"sustainabilityScore"`
	CarbonFootprint     float64           `json:"carbonFootprint"`
	WasteOutput         float64           `json:"wasteOutput"`
	EnergyEfficiency    float64           `json:"energyEfficiency"`
	WaterUsage          float64           `json:"waterUsage"`
	RenewableEnergy     float64           `json:"renewableEnergy"`
	Normalized          []float64         `json:"normalized"`
	Deltas              map[string]string `json:"deltas,omitempty"` // vs baseline; absent on the baseline itself
}

// Generate builds the document for a comparison subset. Index 0 is the
// baseline; its snapshot carries no deltas. now is injected so output is
// reproducible in tests.
func Generate(suppliers []supplier.Supplier, now time.Time) ComparisonDocument {
	channels := metrics.ComputeComparisonChannels(suppliers)

	labels := make([]string, len(metrics.Channels))
	for i, c := range metrics.Channels {
		labels[i] = c.Label()
	}

	doc := ComparisonDocument{
		Date:     now.UTC().Format(time.RFC3339),
		Channels: labels,
	}
	for i, s := range suppliers {
		snap := SupplierSnapshot{
			Name:                s.Name,
			SustainabilityScore: s.SustainabilityScore,
			CarbonFootprint:     s.Metrics.CarbonFootprint,
			WasteOutput:         s.Metrics.WasteOutput,
			EnergyEfficiency:    s.Metrics.EnergyEfficiency,
			WaterUsage:          s.Metrics.WaterUsage,
			RenewableEnergy:     s.Metrics.RenewableEnergy,
			Normalized:          channels[i].Values,
		}
		if i > 0 {
			snap.Deltas = make(map[string]string, len(metrics.Channels))
			for _, c := range metrics.Channels {
				snap.Deltas[c.Label()] = metrics.FormatDelta(c.Raw(s), c.Raw(suppliers[0]))
			}
		}
		doc.Suppliers = append(doc.Suppliers, snap)
	}
	return doc
}

// Write marshals doc as indented JSON and writes it to path.
func Write(doc ComparisonDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal comparison: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
