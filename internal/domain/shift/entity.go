package shift

import (
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
)

// DefaultWorkHours is used when no shift resolves for an employee.
const DefaultWorkHours = 8.0

// DefaultStartTime is the reference start used for lateness when no shift
// resolves for an employee.
const DefaultStartTime = "08:00"

// Shift is a named work period. WorkHours is computed once when the shift is
// created and is not recomputed when the times are edited later.
type Shift struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	WorkHours  float64 `json:"workHours"`
}

// Compliance is the legal classification of a shift length.
type Compliance string

const (
	// CompliantForAll: up to 8 hours.
	CompliantForAll Compliance = "compliant"
	// CompliantNonCitizensOnly: more than 8 and up to 11 hours.
	CompliantNonCitizensOnly Compliance = "non-citizens-only"
	// NonCompliant: more than 11 hours.
	NonCompliant Compliance = "non-compliant"
)

// Classify maps a shift length to its compliance tier.
func Classify(workHours float64) Compliance {
	switch {
	case workHours <= 8:
		return CompliantForAll
	case workHours <= 11:
		return CompliantNonCitizensOnly
	default:
		return NonCompliant
	}
}

// Allows reports whether an employee with the given citizenship may work a
// shift of this tier.
func (c Compliance) Allows(isCitizen bool) bool {
	switch c {
	case CompliantForAll:
		return true
	case CompliantNonCitizensOnly:
		return !isCitizen
	default:
		return false
	}
}

// Warning returns a human readable notice for tiers above CompliantForAll.
func (c Compliance) Warning() string {
	switch c {
	case CompliantNonCitizensOnly:
		return "shift exceeds 8 hours: allowed for non-citizen employees only"
	case NonCompliant:
		return "shift exceeds 11 hours: exceeds the legal daily limit"
	default:
		return ""
	}
}

// New builds a shift and computes its WorkHours from the times.
func New(id, name, department, startTime, endTime string) Shift {
	return Shift{
		ID:         id,
		Name:       name,
		Department: department,
		StartTime:  startTime,
		EndTime:    endTime,
		WorkHours:  timeutil.HoursBetween(startTime, endTime),
	}
}

// Catalog is the shifts ledger.
type Catalog struct {
	set     collection.Set[string, Shift]
	Version int64
}

func NewCatalog(shifts []Shift, version int64) Catalog {
	return Catalog{
		set:     collection.New(shifts, func(s Shift) string { return s.ID }),
		Version: version,
	}
}

func (c Catalog) Get(id string) (Shift, bool) {
	return c.set.Get(id)
}

func (c Catalog) All() []Shift {
	return c.set.Items()
}

// Put adds or replaces s as given. WorkHours is taken from s unchanged.
func (c Catalog) Put(s Shift) Catalog {
	return Catalog{set: c.set.Put(s), Version: c.Version}
}

// Remove deletes a shift unless an employee still references it. On error
// the receiver is returned unchanged.
func (c Catalog) Remove(id string, roster employee.Roster) (Catalog, error) {
	if !c.set.Has(id) {
		return c, ErrShiftNotFound
	}
	inUse := roster.Where(func(e employee.Employee) bool {
		return e.ShiftID != nil && *e.ShiftID == id
	})
	if len(inUse) > 0 {
		return c, ErrShiftInUse
	}
	next, _ := c.set.Delete(id)
	return Catalog{set: next, Version: c.Version}, nil
}

// Effective resolves the shift for an employee: the explicit ShiftID when it
// exists in the catalog, else the first shift of the employee's department.
func (c Catalog) Effective(e employee.Employee) (Shift, bool) {
	if e.ShiftID != nil && *e.ShiftID != "" {
		if s, ok := c.set.Get(*e.ShiftID); ok {
			return s, true
		}
	}
	return c.set.First(func(s Shift) bool { return s.Department == e.Department })
}

// ExpectedDailyHours returns the effective shift length, or DefaultWorkHours.
func (c Catalog) ExpectedDailyHours(e employee.Employee) float64 {
	if s, ok := c.Effective(e); ok {
		return s.WorkHours
	}
	return DefaultWorkHours
}

// StartTimeFor returns the effective shift start, or DefaultStartTime.
func (c Catalog) StartTimeFor(e employee.Employee) string {
	if s, ok := c.Effective(e); ok && s.StartTime != "" {
		return s.StartTime
	}
	return DefaultStartTime
}
