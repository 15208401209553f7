package tui

// model_test.go — dashboard model behavior driven through Update.
//
// Views are not asserted pixel-for-pixel; these tests exercise the
// state transitions behind each key.

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"canopy/internal/seed"
	"canopy/internal/supplier"
)

// keyRune wraps a single printable key as a tea.KeyMsg.
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press runs one key through Update and returns the concrete model.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

// TestNew_FilteredMatchesCollection verifies a fresh model shows the
// whole collection unfiltered.
func TestNew_FilteredMatchesCollection(t *testing.T) {
	m := New(seed.Load())
	if len(m.filtered) != len(m.suppliers) {
		t.Errorf("filtered = %d records, want %d", len(m.filtered), len(m.suppliers))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

// TestCursorMovement verifies j/k navigation clamps at both ends.
func TestCursorMovement(t *testing.T) {
	m := New(seed.Load())

	m = press(t, m, keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("cursor after k at top = %d, want 0", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = press(t, m, keyRune('j'))
	}
	if want := len(m.filtered) - 1; m.cursor != want {
		t.Errorf("cursor after repeated j = %d, want %d", m.cursor, want)
	}
}

// TestSearch_FiltersAndClampsCursor verifies typing in search mode
// narrows the view and pulls the cursor back into range.
func TestSearch_FiltersAndClampsCursor(t *testing.T) {
	m := New(seed.Load())
	for i := 0; i < 20; i++ {
		m = press(t, m, keyRune('j'))
	}

	m = press(t, m, keyRune('/'))
	if m.mode != modeSearch {
		t.Fatalf("mode = %d, want modeSearch", m.mode)
	}
	for _, r := range "eco" {
		m = press(t, m, keyRune(r))
	}
	if len(m.filtered) == 0 {
		t.Fatal("query 'eco' matched nothing in the seed data")
	}
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor %d out of range for %d results", m.cursor, len(m.filtered))
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Errorf("mode after esc = %d, want modeList", m.mode)
	}
}

// TestSelectAndCompare verifies space toggles selection and c only opens
// the comparison once two suppliers are selected.
func TestSelectAndCompare(t *testing.T) {
	m := New(seed.Load())

	m = press(t, m, keyRune('c'))
	if m.mode == modeCompare {
		t.Fatal("compare opened with no selection")
	}
	if !m.statusErr {
		t.Error("expected an error status with no selection")
	}

	m = press(t, m, keyRune(' '))
	m = press(t, m, keyRune('j'))
	m = press(t, m, keyRune(' '))
	if m.sel.Len() != 2 {
		t.Fatalf("selection len = %d, want 2", m.sel.Len())
	}

	m = press(t, m, keyRune('c'))
	if m.mode != modeCompare {
		t.Fatal("compare did not open with 2 selected")
	}
	if m.compare == nil || len(m.compare.suppliers) != 2 {
		t.Fatal("compare state missing suppliers")
	}
	// Baseline is the first-selected supplier.
	if m.compare.suppliers[0].ID != m.sel.IDs()[0] {
		t.Errorf("baseline = %s, want %s", m.compare.suppliers[0].ID, m.sel.IDs()[0])
	}
}

// TestExpandToggle verifies enter expands and collapses the row.
func TestExpandToggle(t *testing.T) {
	m := New(seed.Load())
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = press(t, m, enter)
	if m.expandedID != m.filtered[0].ID {
		t.Errorf("expandedID = %q, want %q", m.expandedID, m.filtered[0].ID)
	}
	m = press(t, m, enter)
	if m.expandedID != "" {
		t.Errorf("expandedID after second enter = %q, want empty", m.expandedID)
	}
}

// TestCertToggleOnExpanded verifies pressing 1 on an expanded row flips
// its first certification without touching the original slice.
func TestCertToggleOnExpanded(t *testing.T) {
	suppliers := seed.Load()
	before := suppliers[0].Certifications[0].Status

	m := New(suppliers)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, keyRune('1'))

	after := m.suppliers[0].Certifications[0].Status
	if after == before {
		t.Errorf("status unchanged: %q", after)
	}
	if suppliers[0].Certifications[0].Status != before {
		t.Error("input slice was mutated")
	}
}

// TestRiskCycleOnExpanded verifies z cycles the compliance risk for the
// expanded supplier only.
func TestRiskCycleOnExpanded(t *testing.T) {
	m := New(seed.Load())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	id := m.filtered[0].ID

	m = press(t, m, keyRune('z'))
	if got := m.risks.Level(id, supplier.RiskCompliance); got != supplier.RiskMedium {
		t.Errorf("compliance = %q, want %q", got, supplier.RiskMedium)
	}
	if got := m.risks.Level(id, supplier.RiskEnvironmental); got != supplier.RiskLow {
		t.Errorf("environmental = %q, want %q", got, supplier.RiskLow)
	}
}
