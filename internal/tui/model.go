// Package tui renders the supplier dashboard as a Bubble Tea program.
//
// The model owns the two logical tables — the supplier collection and
// the risk side table — plus UI state. Every user action runs a core
// operation synchronously and the next View renders from the fresh
// snapshot; nothing here mutates a supplier record in place.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"canopy/internal/selection"
	"canopy/internal/supplier"
)

// mode is the active interaction surface.
type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeCertForm
	modeCompare
)

// Model is the dashboard state.
type Model struct {
	// Logical tables.
	suppliers []supplier.Supplier
	risks     supplier.RiskTable

	// Derived view: filtered is always a subset of suppliers in
	// collection order, recomputed after every query or collection change.
	filtered []supplier.Supplier

	// UI state.
	mode       mode
	search     textinput.Model
	cursor     int
	expandedID string
	sel        selection.Selection
	form       *supplierForm
	certForm   *certForm
	compare    *compareState
	status     string
	statusErr  bool
	keys       keyMap
	help       help.Model
	width      int
	height     int
}

// New builds the dashboard over a seeded supplier collection.
func New(suppliers []supplier.Supplier) Model {
	search := textinput.New()
	search.Placeholder = "Search suppliers by name or location..."
	search.CharLimit = 128
	search.Width = 48

	m := Model{
		suppliers: suppliers,
		risks:     supplier.RiskTable{},
		search:    search,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.refilter()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refilter recomputes the filtered view from the current query and
// clamps the cursor into range.
func (m *Model) refilter() {
	m.filtered = supplier.Filter(m.suppliers, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the supplier under the cursor, or false when the
// filtered view is empty.
func (m Model) current() (supplier.Supplier, bool) {
	if len(m.filtered) == 0 {
		return supplier.Supplier{}, false
	}
	return m.filtered[m.cursor], true
}

// setStatus records a transient footer message.
func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

// setError records a transient footer message in the error style.
func (m *Model) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = true
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeCertForm:
			return m.updateCertForm(msg)
		case modeCompare:
			return m.updateCompare(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

// updateList handles keys on the main list surface.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Expand):
		if s, ok := m.current(); ok {
			if m.expandedID == s.ID {
				m.expandedID = ""
			} else {
				m.expandedID = s.ID
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if s, ok := m.current(); ok {
			m.sel = m.sel.Toggle(s.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Compare):
		if !m.sel.CanCompare() {
			m.setError("select at least 2 suppliers to compare")
			return m, nil
		}
		m.openCompare()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.form = newSupplierForm(nil)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if s, ok := m.current(); ok {
			m.form = newSupplierForm(&s)
			m.mode = modeForm
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.NewCert):
		if s, ok := m.current(); ok && m.expandedID == s.ID {
			m.certForm = newCertForm(s.ID)
			m.mode = modeCertForm
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.expandedID = ""
		m.status = ""
		return m, nil
	}

	// Keys below act on the expanded supplier's detail panels.
	s, ok := m.current()
	if !ok || m.expandedID != s.ID {
		return m, nil
	}
	switch ks := msg.String(); ks {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(ks[0] - '1')
		if idx < len(s.Certifications) {
			m.applyToggleCertification(s, s.Certifications[idx].ID)
		}
		return m, nil
	case "z":
		m.risks = supplier.CycleRisk(m.risks, s.ID, supplier.RiskCompliance)
		return m, nil
	case "x":
		m.risks = supplier.CycleRisk(m.risks, s.ID, supplier.RiskEnvironmental)
		return m, nil
	case "v":
		m.risks = supplier.CycleRisk(m.risks, s.ID, supplier.RiskSupplyChain)
		return m, nil
	}
	return m, nil
}

// updateSearch routes keystrokes into the search input, refiltering on
// every change.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

// applyToggleCertification swaps the toggled record into the collection.
func (m *Model) applyToggleCertification(s supplier.Supplier, certID string) {
	updated := supplier.ToggleCertification(s, certID)
	m.replace(updated)
}

// replace swaps an updated record into the collection by id and
// recomputes the filtered view.
func (m *Model) replace(updated supplier.Supplier) {
	out := make([]supplier.Supplier, len(m.suppliers))
	copy(out, m.suppliers)
	for i, s := range out {
		if s.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	m.suppliers = out
	m.refilter()
}

// addSupplier appends a newly constructed record to the collection.
func (m *Model) addSupplier(s supplier.Supplier) {
	out := make([]supplier.Supplier, 0, len(m.suppliers)+1)
	out = append(out, m.suppliers...)
	out = append(out, s)
	m.suppliers = out
	m.refilter()
}

// newID generates a collection-unique supplier id.
func newID() string {
	return uuid.NewString()
}
