package leave

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
)

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeEmergency Type = "emergency"
	TypeUnpaid    Type = "unpaid"
)

var TypeValues = []string{string(TypeAnnual), string(TypeSick), string(TypeEmergency), string(TypeUnpaid)}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

type Request struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       Type   `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Days is the inclusive calendar-day count; 0 when the range is reversed.
func (r Request) Days() int {
	return timeutil.DaysInclusive(r.StartDate, r.EndDate)
}

// Covers reports whether date lies within the request.
func (r Request) Covers(date string) bool {
	return date >= r.StartDate && date <= r.EndDate
}

type Ledger struct {
	set     collection.Set[string, Request]
	Version int64
}

func NewLedger(requests []Request, version int64) Ledger {
	return Ledger{
		set:     collection.New(requests, func(r Request) string { return r.ID }),
		Version: version,
	}
}

func (l Ledger) Get(id string) (Request, bool) {
	return l.set.Get(id)
}

func (l Ledger) All() []Request {
	return l.set.Items()
}

func (l Ledger) Put(r Request) Ledger {
	return Ledger{set: l.set.Put(r), Version: l.Version}
}

// SetStatus moves a request to status. Any transition is allowed, including
// reverting an approved or rejected request to pending.
func (l Ledger) SetStatus(id string, status Status) (Ledger, Request, error) {
	r, ok := l.set.Get(id)
	if !ok {
		return l, Request{}, ErrLeaveNotFound
	}
	r.Status = status
	return l.Put(r), r, nil
}

func (l Ledger) Remove(id string) (Ledger, error) {
	next, ok := l.set.Delete(id)
	if !ok {
		return l, ErrLeaveNotFound
	}
	return Ledger{set: next, Version: l.Version}, nil
}

// Where returns the requests matching keep, in ledger order.
func (l Ledger) Where(keep func(Request) bool) []Request {
	return l.set.Filter(keep)
}
