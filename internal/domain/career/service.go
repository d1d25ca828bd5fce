package career

import "context"

type CareerService interface {
	AddMilestone(ctx context.Context, req CreateMilestoneRequest) (MilestoneResponse, error)

	// GetPath returns the employee's milestones ordered by date
	GetPath(ctx context.Context, employeeID string) ([]MilestoneResponse, error)

	DeleteMilestone(ctx context.Context, id string) error
}
