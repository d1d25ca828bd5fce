package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, department string) ([]ShiftResponse, error)

	// UpdateShift edits the shift; WorkHours keeps its creation-time value.
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift fails with ErrShiftInUse while any employee references it.
	DeleteShift(ctx context.Context, id string) error
}
