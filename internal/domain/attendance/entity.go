package attendance

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// StatusUnrecorded is a filter value only; it is never stored.
const StatusUnrecorded = "unrecorded"

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
}

// Worked reports whether the status counts as showing up for work.
func (s Status) Worked() bool {
	return s == StatusPresent || s == StatusLate
}

// Entry is one attendance fact for an employee on a date.
type Entry struct {
	EmployeeID string        `json:"employeeId"`
	Date       string        `json:"date"`
	Status     Status        `json:"status"`
	ClockIn    string        `json:"clockIn,omitempty"`
	ClockOut   string        `json:"clockOut,omitempty"`
	Location   *geo.Location `json:"location,omitempty"`
}

// Key identifies an entry. At most one entry exists per key.
type Key struct {
	EmployeeID string
	Date       string
}

func (e Entry) Key() Key {
	return Key{EmployeeID: e.EmployeeID, Date: e.Date}
}

// Hours returns the unrounded worked hours of the entry.
func (e Entry) Hours() float64 {
	return timeutil.HoursBetween(e.ClockIn, e.ClockOut)
}

// Ledger is the attendance ledger indexed by (employee, date).
type Ledger struct {
	set     collection.Set[Key, Entry]
	Version int64
}

// NewLedger indexes entries. Duplicate keys collapse into one entry holding
// the values of the last duplicate.
func NewLedger(entries []Entry, version int64) Ledger {
	return Ledger{
		set:     collection.New(entries, Entry.Key),
		Version: version,
	}
}

func (l Ledger) EntryFor(employeeID, date string) (Entry, bool) {
	return l.set.Get(Key{EmployeeID: employeeID, Date: date})
}

// Upsert replaces the entry with the same key or appends it.
func (l Ledger) Upsert(e Entry) Ledger {
	return Ledger{set: l.set.Put(e), Version: l.Version}
}

func (l Ledger) Entries() []Entry {
	return l.set.Items()
}

func (l Ledger) Len() int {
	return l.set.Len()
}

// ForMonth returns the employee's entries whose date starts with month.
func (l Ledger) ForMonth(employeeID, month string) []Entry {
	return l.set.Filter(func(e Entry) bool {
		return e.EmployeeID == employeeID && timeutil.InMonth(e.Date, month)
	})
}

// ForEmployee returns every entry of the employee, in ledger order.
func (l Ledger) ForEmployee(employeeID string) []Entry {
	return l.set.Filter(func(e Entry) bool { return e.EmployeeID == employeeID })
}

// BulkSetStatus sets status on date for each employee, creating entries that
// do not exist yet. Clock times of existing entries are kept.
func (l Ledger) BulkSetStatus(employeeIDs []string, date string, status Status) Ledger {
	next := l
	for _, id := range employeeIDs {
		e, ok := next.EntryFor(id, date)
		if !ok {
			e = Entry{EmployeeID: id, Date: date}
		}
		e.Status = status
		next = next.Upsert(e)
	}
	return next
}
