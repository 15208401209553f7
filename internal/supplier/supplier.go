// Package supplier holds the supplier entity model and its mutation
// operations.
//
// Records are copy-on-write: nothing in this package mutates a Supplier
// in place. Every operation that changes a supplier returns a fresh
// value, so snapshots held by a renderer stay valid across edits.
package supplier

import (
	"fmt"
	"strconv"
	"strings"
)

// CertStatus is the lifecycle state of a certification.
type CertStatus string

const (
	StatusActive  CertStatus = "active"
	StatusExpired CertStatus = "expired"
	// StatusPending is a valid stored value but no current flow produces
	// it; it is kept so externally seeded data round-trips.
	StatusPending CertStatus = "pending"
)

// Certification is one credential held by a supplier. Ids are unique
// within a supplier's list; list order is display order.
type Certification struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Issuer     string     `yaml:"issuer"`
	ExpiryDate string     `yaml:"expiryDate"` // YYYY-MM-DD
	Status     CertStatus `yaml:"status"`
}

// EnvironmentalMetrics are five independent measurements. No inter-field
// invariant holds between them.
type EnvironmentalMetrics struct {
	CarbonFootprint  float64 `yaml:"carbonFootprint"`  // tons CO2e
	WasteOutput      float64 `yaml:"wasteOutput"`      // tons
	EnergyEfficiency float64 `yaml:"energyEfficiency"` // percent
	WaterUsage       float64 `yaml:"waterUsage"`       // gallons
	RenewableEnergy  float64 `yaml:"renewableEnergy"`  // percent
}

// Note is a free-form annotation on a supplier.
type Note struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
	Date    string `yaml:"date"`
}

// Supplier is a tracked organization. Ids are unique within the active
// collection. SustainabilityScore is intended to be 0-100 but is stored
// as given; range enforcement is an input concern, not an invariant.
type Supplier struct {
	ID                  string               `yaml:"id"`
	Name                string               `yaml:"name"`
	Location            string               `yaml:"location"`
	SustainabilityScore float64              `yaml:"sustainabilityScore"`
	Certifications      []Certification      `yaml:"certifications"`
	Metrics             EnvironmentalMetrics `yaml:"metrics"`
	Notes               []Note               `yaml:"notes,omitempty"`
}

// Clone returns a deep copy. Slice fields are copied so mutating the
// clone's certifications or notes cannot reach the original.
func (s Supplier) Clone() Supplier {
	out := s
	if s.Certifications != nil {
		out.Certifications = make([]Certification, len(s.Certifications))
		copy(out.Certifications, s.Certifications)
	}
	if s.Notes != nil {
		out.Notes = make([]Note, len(s.Notes))
		copy(out.Notes, s.Notes)
	}
	return out
}

// ---------------------------------------------------------------------------
// Construction from untrusted input
// ---------------------------------------------------------------------------

// FormInput is a raw supplier submission, all fields as entered. Numeric
// fields are strings because they arrive from text inputs.
type FormInput struct {
	Name                string
	Location            string
	SustainabilityScore string
	CarbonFootprint     string
	WasteOutput         string
	EnergyEfficiency    string
	WaterUsage          string
	RenewableEnergy     string
}

// New validates a FormInput and builds a Supplier with the given id.
// Missing name or location is rejected. Numeric fields are coerced;
// blank or unparseable values default to 0. Out-of-range scores are
// stored as given.
func New(id string, in FormInput) (Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Supplier{}, fmt.Errorf("supplier: %w: name", ErrMissingField)
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return Supplier{}, fmt.Errorf("supplier: %w: location", ErrMissingField)
	}
	return Supplier{
		ID:                  id,
		Name:                name,
		Location:            location,
		SustainabilityScore: coerceNumber(in.SustainabilityScore),
		Metrics: EnvironmentalMetrics{
			CarbonFootprint:  coerceNumber(in.CarbonFootprint),
			WasteOutput:      coerceNumber(in.WasteOutput),
			EnergyEfficiency: coerceNumber(in.EnergyEfficiency),
			WaterUsage:       coerceNumber(in.WaterUsage),
			RenewableEnergy:  coerceNumber(in.RenewableEnergy),
		},
	}, nil
}

// coerceNumber parses a numeric form field, defaulting to 0.
func coerceNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ---------------------------------------------------------------------------
// Collection helpers
// ---------------------------------------------------------------------------

// Find returns the supplier with the given id, or false if absent.
func Find(suppliers []Supplier, id string) (Supplier, bool) {
	for _, s := range suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return Supplier{}, false
}
