package employee

import (
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/shopspring/decimal"
)

// Employee is stored as-is in the employees ledger.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Branch     string          `json:"branch"`
	Position   string          `json:"position,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	IsCitizen  bool            `json:"isCitizen"`
	ShiftID    *string         `json:"shiftId,omitempty"`
	Status     Status          `json:"status"`
	JoinDate   string          `json:"joinDate,omitempty"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	IBAN       string          `json:"iban,omitempty"`
	IDNumber   string          `json:"idNumber,omitempty"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
}

// Roster is the employees ledger indexed by ID.
type Roster struct {
	set     collection.Set[string, Employee]
	Version int64
}

func NewRoster(employees []Employee, version int64) Roster {
	return Roster{
		set:     collection.New(employees, func(e Employee) string { return e.ID }),
		Version: version,
	}
}

func (r Roster) Get(id string) (Employee, bool) {
	return r.set.Get(id)
}

func (r Roster) All() []Employee {
	return r.set.Items()
}

func (r Roster) Len() int {
	return r.set.Len()
}

// Put adds or replaces e.
func (r Roster) Put(e Employee) Roster {
	return Roster{set: r.set.Put(e), Version: r.Version}
}

// Remove deletes id. References held by other ledgers are left dangling.
func (r Roster) Remove(id string) (Roster, error) {
	next, ok := r.set.Delete(id)
	if !ok {
		return r, ErrEmployeeNotFound
	}
	return Roster{set: next, Version: r.Version}, nil
}

// Where returns the employees matching keep, in roster order.
func (r Roster) Where(keep func(Employee) bool) []Employee {
	return r.set.Filter(keep)
}

// Filter narrows a roster listing. Empty fields match everything.
type Filter struct {
	Name       string
	Department string
	Branch     string
	Status     string
}

// Match applies the filter: name is a case-insensitive substring, the other
// fields are exact.
func (f Filter) Match(e Employee) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(strings.TrimSpace(f.Name))) {
		return false
	}
	if f.Department != "" && f.Department != "all" && e.Department != f.Department {
		return false
	}
	if f.Branch != "" && f.Branch != "all" && e.Branch != f.Branch {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(e.Status) != f.Status {
		return false
	}
	return true
}

// Apply returns the subset of employees matching f.
func (f Filter) Apply(employees []Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
