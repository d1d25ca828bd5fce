package ledger

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(store.NewMemoryStore())

	roster, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, roster.Len())
	assert.Zero(t, roster.Version)

	roster = roster.Put(employee.Employee{ID: "e1", Name: "Ali", Salary: decimal.NewFromInt(9000), Status: employee.StatusActive})
	saved, err := repo.Save(ctx, roster)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	e, ok := loaded.Get("e1")
	require.True(t, ok)
	assert.True(t, e.Salary.Equal(decimal.NewFromInt(9000)))
}

func TestAttendanceRepository_StaleSnapshotConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(store.NewMemoryStore())

	a, err := repo.Load(ctx)
	require.NoError(t, err)
	b, err := repo.Load(ctx)
	require.NoError(t, err)

	_, err = repo.Save(ctx, a.Upsert(attendance.Entry{EmployeeID: "e1", Date: "2024-03-01", Status: attendance.StatusPresent}))
	require.NoError(t, err)

	_, err = repo.Save(ctx, b.Upsert(attendance.Entry{EmployeeID: "e2", Date: "2024-03-01", Status: attendance.StatusAbsent}))
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestSettingsRepository_DefaultsWhenMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(store.NewMemoryStore())

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Default().Currency, s.Currency)

	s.CompanyName = "Acme"
	_, err = repo.Save(ctx, s)
	require.NoError(t, err)

	s, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", s.CompanyName)
	assert.Equal(t, int64(1), s.Version)
}
