package career

import (
	"sort"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
)

type Type string

const (
	TypeHire         Type = "hire"
	TypePromotion    Type = "promotion"
	TypeTransfer     Type = "transfer"
	TypeSalaryChange Type = "salary-change"
	TypeTraining     Type = "training"
)

var TypeValues = []string{
	string(TypeHire),
	string(TypePromotion),
	string(TypeTransfer),
	string(TypeSalaryChange),
	string(TypeTraining),
}

// Milestone is one step of an employee's career path.
type Milestone struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       Type   `json:"type"`
	Title      string `json:"title"`
	FromValue  string `json:"fromValue,omitempty"`
	ToValue    string `json:"toValue,omitempty"`
	Date       string `json:"date"`
	Notes      string `json:"notes,omitempty"`
}

type Ledger struct {
	set     collection.Set[string, Milestone]
	Version int64
}

func NewLedger(ms []Milestone, version int64) Ledger {
	return Ledger{
		set:     collection.New(ms, func(m Milestone) string { return m.ID }),
		Version: version,
	}
}

func (l Ledger) Get(id string) (Milestone, bool) {
	return l.set.Get(id)
}

func (l Ledger) All() []Milestone {
	return l.set.Items()
}

func (l Ledger) Put(m Milestone) Ledger {
	return Ledger{set: l.set.Put(m), Version: l.Version}
}

func (l Ledger) Remove(id string) (Ledger, error) {
	next, ok := l.set.Delete(id)
	if !ok {
		return l, ErrMilestoneNotFound
	}
	return Ledger{set: next, Version: l.Version}, nil
}

// Path returns the employee's milestones, oldest first.
func (l Ledger) Path(employeeID string) []Milestone {
	path := l.set.Filter(func(m Milestone) bool { return m.EmployeeID == employeeID })
	sort.SliceStable(path, func(i, j int) bool { return path[i].Date < path[j].Date })
	return path
}
