// Package seed provides the sample supplier collection a fresh session
// starts from. There is no persistence layer: every run seeds from the
// same embedded data unless the user points at an alternate file.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"canopy/internal/supplier"
)

//go:embed suppliers.yaml
var embedded []byte

// document is the top-level shape of a seed file.
type document struct {
	Suppliers []supplier.Supplier `yaml:"suppliers"`
}

// Load returns the embedded sample collection. Corruption of the
// embedded file is a build defect, so it panics rather than returning
// an error.
func Load() []supplier.Supplier {
	suppliers, err := parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded data invalid: %v", err))
	}
	return suppliers
}

// LoadFile reads an alternate seed file with the same layout as the
// embedded one.
func LoadFile(path string) ([]supplier.Supplier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	suppliers, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return suppliers, nil
}

// parse unmarshals a seed document and checks the id invariant: ids must
// be unique within the collection.
func parse(data []byte) ([]supplier.Supplier, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	seen := make(map[string]bool, len(doc.Suppliers))
	for _, s := range doc.Suppliers {
		if s.ID == "" {
			return nil, fmt.Errorf("supplier %q has no id", s.Name)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate supplier id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return doc.Suppliers, nil
}
