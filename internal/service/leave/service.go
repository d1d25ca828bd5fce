package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/leave"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	locker       *store.Locker
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(locker *store.Locker, leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		locker:       locker,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	emp, ok := roster.Get(req.EmployeeID)
	if !ok {
		return leave.LeaveResponse{}, leave.ErrEmployeeNotFound
	}

	unlock := s.locker.Lock(store.KeyLeaves)
	defer unlock()

	ledger, err := s.leaveRepo.Load(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load leaves: %w", err)
	}

	r := leave.Request{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := s.leaveRepo.Save(ctx, ledger.Put(r)); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to save leave: %w", err)
	}

	slog.Info("Leave requested", "leave_id", r.ID, "employee_id", r.EmployeeID, "days", r.Days())
	return leave.ToResponse(r, emp.Name), nil
}

func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	ledger, names, err := s.load(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	r, ok := ledger.Get(id)
	if !ok {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}
	return leave.ToResponse(r, names[r.EmployeeID]), nil
}

func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	ledger, names, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := ledger.Where(filter.Match)
	resp := make([]leave.LeaveResponse, 0, len(matched))
	for _, r := range matched {
		resp = append(resp, leave.ToResponse(r, names[r.EmployeeID]))
	}
	return resp, nil
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyLeaves)
	defer unlock()

	ledger, names, err := s.load(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	next, r, err := ledger.SetStatus(req.ID, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if _, err := s.leaveRepo.Save(ctx, next); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to save leave: %w", err)
	}

	slog.Info("Leave status updated", "leave_id", r.ID, "status", r.Status)
	return leave.ToResponse(r, names[r.EmployeeID]), nil
}

func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyLeaves)
	defer unlock()

	ledger, err := s.leaveRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaves: %w", err)
	}
	next, err := ledger.Remove(id)
	if err != nil {
		return err
	}
	if _, err := s.leaveRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save leaves: %w", err)
	}
	return nil
}

// load returns the leave ledger and employee names by ID. Requests of
// deleted employees keep an empty name.
func (s *LeaveServiceImpl) load(ctx context.Context) (leave.Ledger, map[string]string, error) {
	ledger, err := s.leaveRepo.Load(ctx)
	if err != nil {
		return leave.Ledger{}, nil, fmt.Errorf("failed to load leaves: %w", err)
	}
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return leave.Ledger{}, nil, fmt.Errorf("failed to load employees: %w", err)
	}
	names := make(map[string]string, roster.Len())
	for _, e := range roster.All() {
		names[e.ID] = e.Name
	}
	return ledger, names, nil
}
