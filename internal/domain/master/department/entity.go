package department

import (
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
)

// Department groups employees and shifts. Both reference it by Name.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Ledger struct {
	set     collection.Set[string, Department]
	Version int64
}

func NewLedger(departments []Department, version int64) Ledger {
	return Ledger{
		set:     collection.New(departments, func(d Department) string { return d.ID }),
		Version: version,
	}
}

func (l Ledger) Get(id string) (Department, bool) {
	return l.set.Get(id)
}

func (l Ledger) ByName(name string) (Department, bool) {
	return l.set.First(func(d Department) bool { return strings.EqualFold(d.Name, name) })
}

func (l Ledger) All() []Department {
	return l.set.Items()
}

func (l Ledger) Put(d Department) Ledger {
	return Ledger{set: l.set.Put(d), Version: l.Version}
}

// Remove deletes a department unless inUse reports an employee naming it.
func (l Ledger) Remove(id string, inUse func(name string) bool) (Ledger, error) {
	d, ok := l.set.Get(id)
	if !ok {
		return l, ErrDepartmentNotFound
	}
	if inUse != nil && inUse(d.Name) {
		return l, ErrDepartmentInUse
	}
	next, _ := l.set.Delete(id)
	return Ledger{set: next, Version: l.Version}, nil
}
