package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetEntry returns the entry recorded for an employee on a date
	GetEntry(ctx context.Context, employeeID, date string) (EntryResponse, error)

	// ListEntries returns an employee's entries, optionally for one month
	ListEntries(ctx context.Context, employeeID, month string) ([]EntryResponse, error)

	// UpsertEntry writes a full entry, replacing any entry with the same key
	UpsertEntry(ctx context.Context, req UpsertEntryRequest) (EntryResponse, error)

	// RecordClock edits clock times and derives the status from the
	// employee's effective shift
	RecordClock(ctx context.Context, req RecordClockRequest) (EntryResponse, error)

	// BulkSetStatus sets one status for many employees on a date
	BulkSetStatus(ctx context.Context, req BulkStatusRequest) ([]EntryResponse, error)

	GetDailyView(ctx context.Context, filter DailyViewFilter) (DailyViewResponse, error)
	GetMonthlyStats(ctx context.Context, employeeID, month string) (MonthlyStatsResponse, error)
	GetTeamAnalysis(ctx context.Context, month string) ([]TeamRowResponse, error)

	// TeamAnalysis returns the unrounded rows handed to export renderers
	TeamAnalysis(ctx context.Context, month string) ([]TeamRow, error)
}
