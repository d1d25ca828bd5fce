package adjustment

import "context"

type AdjustmentService interface {
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	ListAdjustments(ctx context.Context, filter AdjustmentFilter) ([]AdjustmentResponse, error)
	DeleteAdjustment(ctx context.Context, id string) error

	// GetSummary returns received bonuses, deductions and the net balance
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)
}
