package store

import (
	"context"
	"errors"
)

// Ledger keys. Each key holds one whole collection serialized as JSON.
const (
	KeyEmployees   = "employees"
	KeyAttendance  = "attendance"
	KeyShifts      = "shifts"
	KeyAdjustments = "adjustments"
	KeyLeaves      = "leaves"
	KeyDocuments   = "documents"
	KeyCareers     = "careers"
	KeyBranches    = "branches"
	KeyDepartments = "departments"
	KeySettings    = "settings"
)

var (
	ErrNotFound        = errors.New("ledger not found")
	ErrVersionConflict = errors.New("ledger was modified by another writer")
)

// Store is the key-value persistence collaborator. Values are opaque JSON
// blobs replaced whole on every save.
//
// Save succeeds only when expectedVersion matches the stored version (0 for
// a key that was never written) and returns the new version.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, version int64, err error)
	Save(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error)
}
