package adjustment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/google/uuid"
)

type AdjustmentServiceImpl struct {
	locker         *store.Locker
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAdjustmentService(locker *store.Locker, adjustmentRepo adjustment.AdjustmentRepository, employeeRepo employee.EmployeeRepository) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		locker:         locker,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AdjustmentServiceImpl) CreateAdjustment(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := roster.Get(req.EmployeeID); !ok {
		return adjustment.AdjustmentResponse{}, adjustment.ErrEmployeeNotFound
	}

	unlock := s.locker.Lock(store.KeyAdjustments)
	defer unlock()

	ledger, err := s.adjustmentRepo.Load(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to load adjustments: %w", err)
	}

	a := adjustment.Adjustment{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Type:       adjustment.Type(req.Type),
		Amount:     req.Amount.Abs(),
		Reason:     req.Reason,
		Date:       req.Date,
	}
	if _, err := s.adjustmentRepo.Save(ctx, ledger.Append(a)); err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to save adjustment: %w", err)
	}

	slog.Info("Created adjustment", "adjustment_id", a.ID, "employee_id", a.EmployeeID, "type", a.Type)
	return adjustment.ToResponse(a), nil
}

func (s *AdjustmentServiceImpl) ListAdjustments(ctx context.Context, filter adjustment.AdjustmentFilter) ([]adjustment.AdjustmentResponse, error) {
	ledger, err := s.adjustmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjustments: %w", err)
	}

	resp := make([]adjustment.AdjustmentResponse, 0)
	for _, a := range ledger.Active() {
		if filter.Match(a) {
			resp = append(resp, adjustment.ToResponse(a))
		}
	}
	return resp, nil
}

func (s *AdjustmentServiceImpl) DeleteAdjustment(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyAdjustments)
	defer unlock()

	ledger, err := s.adjustmentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load adjustments: %w", err)
	}
	next, err := ledger.SoftDelete(id, time.Now())
	if err != nil {
		return err
	}
	if _, err := s.adjustmentRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save adjustments: %w", err)
	}
	return nil
}

func (s *AdjustmentServiceImpl) GetSummary(ctx context.Context, employeeID string) (adjustment.SummaryResponse, error) {
	ledger, err := s.adjustmentRepo.Load(ctx)
	if err != nil {
		return adjustment.SummaryResponse{}, fmt.Errorf("failed to load adjustments: %w", err)
	}

	totals := ledger.Summary(employeeID)
	return adjustment.SummaryResponse{
		EmployeeID:      employeeID,
		TotalBonuses:    totals.Bonuses,
		TotalDeductions: totals.Deductions,
		NetBalance:      totals.Net(),
	}, nil
}
