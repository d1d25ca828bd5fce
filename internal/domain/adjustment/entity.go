package adjustment

import (
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeBonus              Type = "bonus"
	TypeDeduction          Type = "deduction"
	TypeAdvance            Type = "advance"
	TypeHousingAllowance   Type = "housing-allowance"
	TypeTransportAllowance Type = "transport-allowance"
)

var TypeValues = []string{
	string(TypeBonus),
	string(TypeDeduction),
	string(TypeAdvance),
	string(TypeHousingAllowance),
	string(TypeTransportAllowance),
}

// IsAdditive reports whether adjustments of type t increase pay. The
// partition is fixed: bonus and both allowances add, deduction and advance
// subtract.
func IsAdditive(t Type) bool {
	switch t {
	case TypeBonus, TypeHousingAllowance, TypeTransportAllowance:
		return true
	default:
		return false
	}
}

// Adjustment is a one-off monetary entry. Amount is always a positive
// magnitude; its sign comes from the type.
type Adjustment struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Type       Type            `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	Date       string          `json:"date"`
	DeletedAt  *time.Time      `json:"deletedAt,omitempty"`
}

func (a Adjustment) Deleted() bool {
	return a.DeletedAt != nil
}

// Ledger holds every adjustment ever written, soft-deleted ones included.
type Ledger struct {
	set     collection.Set[string, Adjustment]
	Version int64
}

func NewLedger(adjustments []Adjustment, version int64) Ledger {
	return Ledger{
		set:     collection.New(adjustments, func(a Adjustment) string { return a.ID }),
		Version: version,
	}
}

// Get returns a live adjustment.
func (l Ledger) Get(id string) (Adjustment, bool) {
	a, ok := l.set.Get(id)
	if !ok || a.Deleted() {
		return Adjustment{}, false
	}
	return a, true
}

func (l Ledger) Append(a Adjustment) Ledger {
	return Ledger{set: l.set.Put(a), Version: l.Version}
}

// SoftDelete stamps DeletedAt. Deleted adjustments stay in the ledger but are
// excluded from Active and every sum.
func (l Ledger) SoftDelete(id string, at time.Time) (Ledger, error) {
	a, ok := l.Get(id)
	if !ok {
		return l, ErrAdjustmentNotFound
	}
	a.DeletedAt = &at
	return Ledger{set: l.set.Put(a), Version: l.Version}, nil
}

// All returns every entry including soft-deleted ones, for persistence.
func (l Ledger) All() []Adjustment {
	return l.set.Items()
}

// Active returns the live adjustments.
func (l Ledger) Active() []Adjustment {
	return l.set.Filter(func(a Adjustment) bool { return !a.Deleted() })
}

// ForEmployee returns the employee's live adjustments.
func (l Ledger) ForEmployee(employeeID string) []Adjustment {
	return l.set.Filter(func(a Adjustment) bool {
		return !a.Deleted() && a.EmployeeID == employeeID
	})
}

// Totals splits amounts by the additive partition.
type Totals struct {
	Bonuses    decimal.Decimal
	Deductions decimal.Decimal
}

// Net is bonuses minus deductions.
func (t Totals) Net() decimal.Decimal {
	return t.Bonuses.Sub(t.Deductions)
}

// Sum totals adjustments. Soft-deleted entries are skipped.
func Sum(adjustments []Adjustment) Totals {
	t := Totals{Bonuses: decimal.Zero, Deductions: decimal.Zero}
	for _, a := range adjustments {
		if a.Deleted() {
			continue
		}
		if IsAdditive(a.Type) {
			t.Bonuses = t.Bonuses.Add(a.Amount)
		} else {
			t.Deductions = t.Deductions.Add(a.Amount)
		}
	}
	return t
}

// Summary is the per-employee financial summary.
func (l Ledger) Summary(employeeID string) Totals {
	return Sum(l.ForEmployee(employeeID))
}
