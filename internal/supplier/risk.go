package supplier

// risk.go — per-supplier risk assessment side table.
//
// Risk levels are ephemeral review state, not a supplier attribute. They
// live in a separate table keyed by supplier id so the supplier
// collection and the risk view can be reset independently.

// RiskLevel is an ordered severity: Low < Medium < High.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Next returns the following level in the Low → Medium → High → Low cycle.
// Unrecognized values restart at Medium, as if the current level were Low.
func (l RiskLevel) Next() RiskLevel {
	switch l {
	case RiskLow:
		return RiskMedium
	case RiskMedium:
		return RiskHigh
	case RiskHigh:
		return RiskLow
	default:
		return RiskMedium
	}
}

// RiskCategory is one independently leveled risk axis.
type RiskCategory string

const (
	RiskCompliance    RiskCategory = "compliance"
	RiskEnvironmental RiskCategory = "environmental"
	RiskSupplyChain   RiskCategory = "supplyChain"
)

// RiskCategories lists all axes in display order.
var RiskCategories = []RiskCategory{RiskCompliance, RiskEnvironmental, RiskSupplyChain}

// RiskAssessment holds one level per category for a single supplier.
type RiskAssessment struct {
	Compliance    RiskLevel
	Environmental RiskLevel
	SupplyChain   RiskLevel
}

// Level returns the level for a category, defaulting to Low when unset.
func (a RiskAssessment) Level(cat RiskCategory) RiskLevel {
	var l RiskLevel
	switch cat {
	case RiskCompliance:
		l = a.Compliance
	case RiskEnvironmental:
		l = a.Environmental
	case RiskSupplyChain:
		l = a.SupplyChain
	}
	if l == "" {
		return RiskLow
	}
	return l
}

// setLevel returns a copy of the assessment with cat set to l.
func (a RiskAssessment) setLevel(cat RiskCategory, l RiskLevel) RiskAssessment {
	switch cat {
	case RiskCompliance:
		a.Compliance = l
	case RiskEnvironmental:
		a.Environmental = l
	case RiskSupplyChain:
		a.SupplyChain = l
	}
	return a
}

// RiskTable maps supplier id → assessment. Suppliers with no entry are
// Low on every axis.
type RiskTable map[string]RiskAssessment

// Level returns the current level for a supplier and category,
// defaulting to Low when the supplier has no entry.
func (t RiskTable) Level(supplierID string, cat RiskCategory) RiskLevel {
	return t[supplierID].Level(cat)
}

// CycleRisk advances one category for one supplier through the
// Low → Medium → High → Low cycle and returns a new table; the input
// table is untouched. A supplier with no prior entry cycles from Low.
func CycleRisk(t RiskTable, supplierID string, cat RiskCategory) RiskTable {
	out := make(RiskTable, len(t)+1)
	for id, a := range t {
		out[id] = a
	}
	current := out[supplierID].Level(cat)
	out[supplierID] = out[supplierID].setLevel(cat, current.Next())
	return out
}
