package tui

// form.go — modal forms for adding/editing suppliers and adding
// certifications. Submissions go through the core constructors, so a
// rejected form stays open with its values intact for another attempt.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"canopy/internal/geo"
	"canopy/internal/supplier"
)

// supplierForm field order.
const (
	fieldName = iota
	fieldLocation
	fieldScore
	fieldCarbon
	fieldWaste
	fieldEnergy
	fieldWater
	fieldRenewable
	numSupplierFields
)

var supplierFieldLabels = [numSupplierFields]string{
	"Company Name",
	"Location",
	"Sustainability Score (0-100)",
	"Carbon Footprint (tons CO2e)",
	"Waste Output (tons)",
	"Energy Efficiency (%)",
	"Water Usage (gallons)",
	"Renewable Energy (%)",
}

// supplierForm is the add/edit modal. editingID is empty for an add.
// The location field cycles through the supported set rather than
// accepting free text, mirroring the fixed select of the source form.
type supplierForm struct {
	editingID   string
	title       string
	inputs      [numSupplierFields]textinput.Model
	locations   []string
	locationIdx int
	focus       int
}

// newSupplierForm builds the modal, prefilled from initial when editing.
func newSupplierForm(initial *supplier.Supplier) *supplierForm {
	f := &supplierForm{
		title:     "Add New Supplier",
		locations: geo.Names(),
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.Placeholder = supplierFieldLabels[i]
		f.inputs[i] = ti
	}
	if initial != nil {
		f.editingID = initial.ID
		f.title = "Edit Supplier"
		f.inputs[fieldName].SetValue(initial.Name)
		f.inputs[fieldScore].SetValue(formatNumber(initial.SustainabilityScore))
		f.inputs[fieldCarbon].SetValue(formatNumber(initial.Metrics.CarbonFootprint))
		f.inputs[fieldWaste].SetValue(formatNumber(initial.Metrics.WasteOutput))
		f.inputs[fieldEnergy].SetValue(formatNumber(initial.Metrics.EnergyEfficiency))
		f.inputs[fieldWater].SetValue(formatNumber(initial.Metrics.WaterUsage))
		f.inputs[fieldRenewable].SetValue(formatNumber(initial.Metrics.RenewableEnergy))
		for i, name := range f.locations {
			if name == initial.Location {
				f.locationIdx = i
				break
			}
		}
	}
	f.inputs[fieldName].Focus()
	return f
}

// formatNumber renders a float without trailing zeros, as a form value.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// location returns the currently chosen location string.
func (f *supplierForm) location() string {
	if len(f.locations) == 0 {
		return ""
	}
	return f.locations[f.locationIdx]
}

// input builds the core FormInput from the current field values.
func (f *supplierForm) input() supplier.FormInput {
	return supplier.FormInput{
		Name:                f.inputs[fieldName].Value(),
		Location:            f.location(),
		SustainabilityScore: f.inputs[fieldScore].Value(),
		CarbonFootprint:     f.inputs[fieldCarbon].Value(),
		WasteOutput:         f.inputs[fieldWaste].Value(),
		EnergyEfficiency:    f.inputs[fieldEnergy].Value(),
		WaterUsage:          f.inputs[fieldWater].Value(),
		RenewableEnergy:     f.inputs[fieldRenewable].Value(),
	}
}

// cycleFocus moves focus by delta, wrapping around all fields.
func (f *supplierForm) cycleFocus(delta int) tea.Cmd {
	if f.focus != fieldLocation {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + numSupplierFields) % numSupplierFields
	if f.focus == fieldLocation {
		return nil
	}
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

// updateForm handles keys while the supplier form is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.form = nil
		m.mode = modeList
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, f.cycleFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, f.cycleFocus(-1)
	case tea.KeyEnter:
		return m.submitSupplierForm()
	}

	// The location field is a select: left/right cycle the supported set.
	if f.focus == fieldLocation {
		switch msg.String() {
		case "left", "h":
			f.locationIdx = (f.locationIdx - 1 + len(f.locations)) % len(f.locations)
		case "right", "l", " ":
			f.locationIdx = (f.locationIdx + 1) % len(f.locations)
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// submitSupplierForm validates through the core constructor and applies
// the edit or add. Validation failure keeps the form open.
func (m Model) submitSupplierForm() (tea.Model, tea.Cmd) {
	f := m.form
	id := f.editingID
	if id == "" {
		id = newID()
	}
	parsed, err := supplier.New(id, f.input())
	if err != nil {
		// Rejected, no-op: the form stays open for another attempt.
		m.setError("form rejected: %v", err)
		return m, nil
	}

	if f.editingID == "" {
		m.addSupplier(parsed)
		m.setStatus("added supplier %q", parsed.Name)
	} else {
		// Edits preserve certifications and notes; only the form's
		// fields are patched.
		patch := supplier.Patch{
			Name:                &parsed.Name,
			Location:            &parsed.Location,
			SustainabilityScore: &parsed.SustainabilityScore,
			Metrics: supplier.MetricsPatch{
				CarbonFootprint:  &parsed.Metrics.CarbonFootprint,
				WasteOutput:      &parsed.Metrics.WasteOutput,
				EnergyEfficiency: &parsed.Metrics.EnergyEfficiency,
				WaterUsage:       &parsed.Metrics.WaterUsage,
				RenewableEnergy:  &parsed.Metrics.RenewableEnergy,
			},
		}
		updated, err := supplier.Update(m.suppliers, f.editingID, patch)
		if err != nil {
			m.setError("update rejected: %v", err)
			return m, nil
		}
		m.suppliers = updated
		m.refilter()
		m.setStatus("updated supplier %q", parsed.Name)
	}
	m.form = nil
	m.mode = modeList
	return m, nil
}

// viewForm renders the supplier form modal.
func (f *supplierForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := supplierFieldLabels[i]
		if i == fieldLocation {
			marker := "  "
			if f.focus == fieldLocation {
				marker = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s: %s %s\n", marker, label, f.location(),
				dimStyle.Render("(←/→ to change)")))
			continue
		}
		marker := "  "
		if f.focus == i {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, label, f.inputs[i].View()))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter submit · tab next field · esc cancel"))
	return modalStyle.Render(b.String())
}

// ---------------------------------------------------------------------------
// Certification form
// ---------------------------------------------------------------------------

const (
	certFieldName = iota
	certFieldIssuer
	certFieldExpiry
	numCertFields
)

var certFieldLabels = [numCertFields]string{
	"Certification Name",
	"Issuer",
	"Expiry Date (YYYY-MM-DD)",
}

// certForm is the add-certification modal for one supplier.
type certForm struct {
	supplierID string
	inputs     [numCertFields]textinput.Model
	focus      int
}

func newCertForm(supplierID string) *certForm {
	f := &certForm{supplierID: supplierID}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.Placeholder = certFieldLabels[i]
		f.inputs[i] = ti
	}
	f.inputs[certFieldName].Focus()
	return f
}

func (f *certForm) cycleFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + numCertFields) % numCertFields
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

// updateCertForm handles keys while the certification form is open.
func (m Model) updateCertForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.certForm
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.certForm = nil
		m.mode = modeList
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, f.cycleFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, f.cycleFocus(-1)
	case tea.KeyEnter:
		s, ok := supplier.Find(m.suppliers, f.supplierID)
		if !ok {
			m.setError("supplier no longer exists")
			m.certForm = nil
			m.mode = modeList
			return m, nil
		}
		updated, err := supplier.AddCertification(s, supplier.CertificationInput{
			Name:       f.inputs[certFieldName].Value(),
			Issuer:     f.inputs[certFieldIssuer].Value(),
			ExpiryDate: f.inputs[certFieldExpiry].Value(),
		})
		if err != nil {
			// Rejected, no-op: the form stays open for another attempt.
			m.setError("certification rejected: %v", err)
			return m, nil
		}
		m.replace(updated)
		m.setStatus("added certification to %q", s.Name)
		m.certForm = nil
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// view renders the certification form modal.
func (f *certForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Certification"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		marker := "  "
		if f.focus == i {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, certFieldLabels[i], f.inputs[i].View()))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter submit · tab next field · esc cancel"))
	return modalStyle.Render(b.String())
}
