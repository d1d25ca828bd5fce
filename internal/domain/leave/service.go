package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// UpdateStatus sets the status without enforcing a lifecycle
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveResponse, error)

	DeleteLeave(ctx context.Context, id string) error
}
