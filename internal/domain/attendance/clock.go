package attendance

import "github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"

// LateGraceMinutes is how long after shift start a clock-in still counts as
// present. A clock-in at exactly start+grace is present.
const LateGraceMinutes = 15

// DeriveStatus classifies a clock-in against the shift start. Unparseable
// values are treated as present.
func DeriveStatus(clockIn, shiftStart string) Status {
	in, ok := timeutil.MinutesOfDay(clockIn)
	if !ok {
		return StatusPresent
	}
	start, ok := timeutil.MinutesOfDay(shiftStart)
	if !ok {
		return StatusPresent
	}
	if in > start+LateGraceMinutes {
		return StatusLate
	}
	return StatusPresent
}

// ClockChange carries the clock fields being edited. Nil leaves a field
// untouched; an empty string clears it.
type ClockChange struct {
	ClockIn  *string
	ClockOut *string
}

// ApplyClock applies change to the current entry (found reports whether it
// exists) and derives the resulting status:
//   - setting a clock-in derives present or late from shiftStart
//   - clearing the clock-in while no clock-out exists marks absent
//   - a new entry receiving only a clock-out is present
func ApplyClock(current Entry, found bool, change ClockChange, shiftStart string) Entry {
	next := current

	if change.ClockOut != nil {
		next.ClockOut = *change.ClockOut
		if !found && next.Status == "" {
			next.Status = StatusPresent
		}
	}

	if change.ClockIn != nil {
		next.ClockIn = *change.ClockIn
		if next.ClockIn != "" {
			next.Status = DeriveStatus(next.ClockIn, shiftStart)
		} else if next.ClockOut == "" {
			next.Status = StatusAbsent
		}
	}

	if next.Status == "" {
		next.Status = StatusAbsent
	}
	return next
}
