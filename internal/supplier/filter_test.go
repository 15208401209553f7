package supplier

// filter_test.go — search predicate properties: subset, order
// preservation, conjunctive case-insensitive substring matching.

import (
	"strings"
	"testing"
)

// filterFixture is a small collection in a fixed order.
func filterFixture() []Supplier {
	return []Supplier{
		{ID: "1", Name: "EcoTech Solutions", Location: "San Francisco, CA"},
		{ID: "2", Name: "Sustainable Manufacturing Co.", Location: "Austin, TX"},
		{ID: "3", Name: "Green Logistics Inc.", Location: "Seattle, WA"},
		{ID: "4", Name: "Nordic Eco Industries", Location: "Portland, OR"},
	}
}

// TestFilter_EmptyQueryReturnsAll verifies that the empty query matches
// everything in the original order.
func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	suppliers := filterFixture()

	for _, query := range []string{"", "   ", "\t"} {
		got := Filter(suppliers, query)
		if len(got) != len(suppliers) {
			t.Fatalf("Filter(%q) returned %d suppliers, want %d", query, len(got), len(suppliers))
		}
		for i := range got {
			if got[i].ID != suppliers[i].ID {
				t.Errorf("Filter(%q)[%d].ID = %q, want %q (order must be preserved)",
					query, i, got[i].ID, suppliers[i].ID)
			}
		}
	}
}

// TestFilter_Matching covers conjunctive, substring, case-insensitive
// matching across name and location.
func TestFilter_Matching(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"name substring", "eco", []string{"1", "4"}},
		{"case insensitive", "ECOTECH", []string{"1"}},
		{"location substring", "seattle", []string{"3"}},
		{"conjunctive tokens", "eco portland", []string{"4"}},
		{"token order irrelevant", "portland eco", []string{"4"}},
		{"spans name and location", "green wa", []string{"3"}},
		{"no match", "zzz", nil},
		{"conjunctive failure", "eco austin", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(filterFixture(), tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d suppliers, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Filter(%q)[%d].ID = %q, want %q", tt.query, i, got[i].ID, want)
				}
			}
		})
	}
}

// TestFilter_SubsetProperty verifies that every returned supplier exists
// in the input and its haystack contains every query token.
func TestFilter_SubsetProperty(t *testing.T) {
	suppliers := filterFixture()
	queries := []string{"eco", "a", "inc seattle", "co", "SAN f"}

	for _, q := range queries {
		got := Filter(suppliers, q)
		for _, s := range got {
			if _, ok := Find(suppliers, s.ID); !ok {
				t.Errorf("Filter(%q) fabricated supplier %q", q, s.ID)
			}
			haystack := strings.ToLower(s.Name + " " + s.Location)
			for _, tok := range strings.Fields(strings.ToLower(q)) {
				if !strings.Contains(haystack, tok) {
					t.Errorf("Filter(%q) returned %q whose haystack lacks token %q", q, s.ID, tok)
				}
			}
		}
	}
}

// TestFilter_DoesNotModifyInput verifies the input slice is untouched.
func TestFilter_DoesNotModifyInput(t *testing.T) {
	suppliers := filterFixture()
	Filter(suppliers, "eco")

	want := filterFixture()
	for i := range suppliers {
		if suppliers[i].ID != want[i].ID {
			t.Fatalf("input reordered at %d: %q", i, suppliers[i].ID)
		}
	}
}
