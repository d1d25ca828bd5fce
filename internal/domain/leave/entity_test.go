package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Days(t *testing.T) {
	assert.Equal(t, 1, Request{StartDate: "2024-03-01", EndDate: "2024-03-01"}.Days())
	assert.Equal(t, 5, Request{StartDate: "2024-02-27", EndDate: "2024-03-02"}.Days())
	assert.Equal(t, 0, Request{StartDate: "2024-03-05", EndDate: "2024-03-01"}.Days())
}

func TestLedger_SetStatusIsPermissive(t *testing.T) {
	l := NewLedger([]Request{{ID: "l1", EmployeeID: "e1", Status: StatusPending}}, 1)

	l, r, err := l.SetStatus("l1", StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, r.Status)

	l, r, err = l.SetStatus("l1", StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, r.Status)

	_, _, err = l.SetStatus("missing", StatusRejected)
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}

func TestLeaveFilter_Match(t *testing.T) {
	r := Request{EmployeeID: "e1", Type: TypeSick, Status: StatusPending}

	assert.True(t, LeaveFilter{}.Match(r))
	assert.True(t, LeaveFilter{Status: "all", EmployeeID: "e1"}.Match(r))
	assert.False(t, LeaveFilter{Status: "approved"}.Match(r))
	assert.False(t, LeaveFilter{Type: "annual"}.Match(r))
}
