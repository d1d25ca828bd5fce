package shift

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	locker       *store.Locker
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(locker *store.Locker, shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		locker:       locker,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyShifts)
	defer unlock()

	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	created := shift.New(uuid.New().String(), strings.TrimSpace(req.Name), req.Department, req.StartTime, req.EndTime)
	if _, err := s.shiftRepo.Save(ctx, catalog.Put(created)); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to save shift: %w", err)
	}

	resp := shift.ToResponse(created)
	if resp.Warning != "" {
		slog.Warn("Shift exceeds compliant hours", "shift_id", created.ID, "work_hours", created.WorkHours, "compliance", resp.Compliance)
	}
	return resp, nil
}

func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	sh, ok := catalog.Get(id)
	if !ok {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}
	return shift.ToResponse(sh), nil
}

func (s *ShiftServiceImpl) ListShifts(ctx context.Context, department string) ([]shift.ShiftResponse, error) {
	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	resp := make([]shift.ShiftResponse, 0)
	for _, sh := range catalog.All() {
		if department != "" && department != "all" && sh.Department != department {
			continue
		}
		resp = append(resp, shift.ToResponse(sh))
	}
	return resp, nil
}

func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyShifts)
	defer unlock()

	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	sh, ok := catalog.Get(req.ID)
	if !ok {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}

	if req.Name != nil {
		sh.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		sh.Department = *req.Department
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}

	if _, err := s.shiftRepo.Save(ctx, catalog.Put(sh)); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to save shift: %w", err)
	}
	return shift.ToResponse(sh), nil
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyShifts, store.KeyEmployees)
	defer unlock()

	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	next, err := catalog.Remove(id, roster)
	if err != nil {
		return err
	}
	if _, err := s.shiftRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save shifts: %w", err)
	}

	slog.Info("Deleted shift", "shift_id", id)
	return nil
}
