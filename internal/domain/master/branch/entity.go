package branch

import (
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
)

// Branch is a store location. Employees reference it by Name.
type Branch struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Address  string        `json:"address,omitempty"`
	Location *geo.Location `json:"location,omitempty"`
}

type Ledger struct {
	set     collection.Set[string, Branch]
	Version int64
}

func NewLedger(branches []Branch, version int64) Ledger {
	return Ledger{
		set:     collection.New(branches, func(b Branch) string { return b.ID }),
		Version: version,
	}
}

func (l Ledger) Get(id string) (Branch, bool) {
	return l.set.Get(id)
}

// ByName finds a branch by case-insensitive name.
func (l Ledger) ByName(name string) (Branch, bool) {
	return l.set.First(func(b Branch) bool { return strings.EqualFold(b.Name, name) })
}

func (l Ledger) All() []Branch {
	return l.set.Items()
}

func (l Ledger) Put(b Branch) Ledger {
	return Ledger{set: l.set.Put(b), Version: l.Version}
}

// Remove deletes a branch. inUse reports whether any employee still names it;
// in that case the ledger is returned unchanged with ErrBranchInUse.
func (l Ledger) Remove(id string, inUse func(name string) bool) (Ledger, error) {
	b, ok := l.set.Get(id)
	if !ok {
		return l, ErrBranchNotFound
	}
	if inUse != nil && inUse(b.Name) {
		return l, ErrBranchInUse
	}
	next, _ := l.set.Delete(id)
	return Ledger{set: next, Version: l.Version}, nil
}
