package supplier

// mutate.go — copy-on-write edit operations.
//
// Every function here returns a new value and leaves its input intact;
// the caller swaps the result into the collection. Invalid input yields
// a rejected, no-op outcome (unchanged value, optional sentinel error),
// never a panic — the caller can re-prompt without losing other state.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMissingField rejects a submission with a required field left blank.
var ErrMissingField = errors.New("missing required field")

// ErrUnknownSupplier rejects an operation naming an id not in the collection.
var ErrUnknownSupplier = errors.New("unknown supplier id")

// ---------------------------------------------------------------------------
// Field updates
// ---------------------------------------------------------------------------

// Patch is a partial supplier edit. Nil fields are left as they are.
type Patch struct {
	Name                *string
	Location            *string
	SustainabilityScore *float64
	Notes               []Note // replaces the note list when non-nil
	Metrics             MetricsPatch
}

// MetricsPatch is a partial metrics edit. Nil fields are left as they are.
type MetricsPatch struct {
	CarbonFootprint  *float64
	WasteOutput      *float64
	EnergyEfficiency *float64
	WaterUsage       *float64
	RenewableEnergy  *float64
}

// Update merges patch into the supplier with the given id and returns a
// new collection with the merged record in place. The input slice and
// its records are untouched. An unknown id returns the input unchanged
// with ErrUnknownSupplier.
func Update(suppliers []Supplier, id string, patch Patch) ([]Supplier, error) {
	idx := -1
	for i, s := range suppliers {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return suppliers, fmt.Errorf("update %q: %w", id, ErrUnknownSupplier)
	}

	out := make([]Supplier, len(suppliers))
	copy(out, suppliers)
	out[idx] = applyPatch(suppliers[idx], patch)
	return out, nil
}

// applyPatch builds the merged record. Identity is never patched.
func applyPatch(s Supplier, patch Patch) Supplier {
	merged := s.Clone()
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Location != nil {
		merged.Location = *patch.Location
	}
	if patch.SustainabilityScore != nil {
		merged.SustainabilityScore = *patch.SustainabilityScore
	}
	if patch.Notes != nil {
		merged.Notes = make([]Note, len(patch.Notes))
		copy(merged.Notes, patch.Notes)
	}
	m := patch.Metrics
	if m.CarbonFootprint != nil {
		merged.Metrics.CarbonFootprint = *m.CarbonFootprint
	}
	if m.WasteOutput != nil {
		merged.Metrics.WasteOutput = *m.WasteOutput
	}
	if m.EnergyEfficiency != nil {
		merged.Metrics.EnergyEfficiency = *m.EnergyEfficiency
	}
	if m.WaterUsage != nil {
		merged.Metrics.WaterUsage = *m.WaterUsage
	}
	if m.RenewableEnergy != nil {
		merged.Metrics.RenewableEnergy = *m.RenewableEnergy
	}
	return merged
}

// ---------------------------------------------------------------------------
// Certifications
// ---------------------------------------------------------------------------

// ToggleCertification flips the named certification between active and
// expired and returns the updated supplier. A certification in any
// non-active state becomes active. An unknown certId returns the
// supplier unchanged.
func ToggleCertification(s Supplier, certID string) Supplier {
	idx := -1
	for i, c := range s.Certifications {
		if c.ID == certID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	out := s.Clone()
	if out.Certifications[idx].Status == StatusActive {
		out.Certifications[idx].Status = StatusExpired
	} else {
		out.Certifications[idx].Status = StatusActive
	}
	return out
}

// CertificationInput is a raw add-certification submission.
type CertificationInput struct {
	Name       string
	Issuer     string
	ExpiryDate string
}

// AddCertification appends a new active certification with a freshly
// generated id to the end of the supplier's list. A blank name, issuer,
// or expiry date rejects the submission: the supplier is returned
// unchanged with ErrMissingField.
func AddCertification(s Supplier, in CertificationInput) (Supplier, error) {
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"issuer", in.Issuer},
		{"expiryDate", in.ExpiryDate},
	} {
		if strings.TrimSpace(f.value) == "" {
			return s, fmt.Errorf("add certification: %w: %s", ErrMissingField, f.name)
		}
	}
	out := s.Clone()
	out.Certifications = append(out.Certifications, Certification{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Issuer:     strings.TrimSpace(in.Issuer),
		ExpiryDate: strings.TrimSpace(in.ExpiryDate),
		Status:     StatusActive,
	})
	return out, nil
}
