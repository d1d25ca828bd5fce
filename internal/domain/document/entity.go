package document

import (
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/collection"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
)

// DefaultExpiringSoonDays is the look-ahead window for ExpiringSoon.
const DefaultExpiringSoonDays = 30

type Type string

const (
	TypeIqama      Type = "iqama"
	TypePassport   Type = "passport"
	TypeContract   Type = "contract"
	TypeHealthCard Type = "health-card"
	TypeOther      Type = "other"
)

var TypeValues = []string{
	string(TypeIqama),
	string(TypePassport),
	string(TypeContract),
	string(TypeHealthCard),
	string(TypeOther),
}

type ExpiryState string

const (
	Expired      ExpiryState = "expired"
	ExpiringSoon ExpiryState = "expiring-soon"
	Valid        ExpiryState = "valid"
)

type Document struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       Type   `json:"type"`
	Number     string `json:"number,omitempty"`
	IssueDate  string `json:"issueDate,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	FilePath   string `json:"filePath,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// DaysUntilExpiry counts days from today to the expiry date. Negative once
// expired. ok is false when the document has no parseable expiry date.
func (d Document) DaysUntilExpiry(today string) (int, bool) {
	exp, err := time.Parse(timeutil.DateLayout, d.ExpiryDate)
	if err != nil {
		return 0, false
	}
	now, err := time.Parse(timeutil.DateLayout, today)
	if err != nil {
		return 0, false
	}
	return int(exp.Sub(now).Hours() / 24), true
}

// State classifies the document on today. Documents without an expiry date
// are always valid. A document expiring today is expiring soon, not expired.
func (d Document) State(today string, soonDays int) ExpiryState {
	days, ok := d.DaysUntilExpiry(today)
	if !ok {
		return Valid
	}
	switch {
	case days < 0:
		return Expired
	case days <= soonDays:
		return ExpiringSoon
	default:
		return Valid
	}
}

type Ledger struct {
	set     collection.Set[string, Document]
	Version int64
}

func NewLedger(docs []Document, version int64) Ledger {
	return Ledger{
		set:     collection.New(docs, func(d Document) string { return d.ID }),
		Version: version,
	}
}

func (l Ledger) Get(id string) (Document, bool) {
	return l.set.Get(id)
}

func (l Ledger) All() []Document {
	return l.set.Items()
}

func (l Ledger) Put(d Document) Ledger {
	return Ledger{set: l.set.Put(d), Version: l.Version}
}

func (l Ledger) Remove(id string) (Ledger, error) {
	next, ok := l.set.Delete(id)
	if !ok {
		return l, ErrDocumentNotFound
	}
	return Ledger{set: next, Version: l.Version}, nil
}

func (l Ledger) Where(keep func(Document) bool) []Document {
	return l.set.Filter(keep)
}

// NeedingAttention returns the expired and expiring-soon documents.
func (l Ledger) NeedingAttention(today string, soonDays int) []Document {
	return l.set.Filter(func(d Document) bool {
		return d.State(today, soonDays) != Valid
	})
}
