package career

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/google/uuid"
)

type CareerServiceImpl struct {
	locker       *store.Locker
	careerRepo   career.CareerRepository
	employeeRepo employee.EmployeeRepository
}

func NewCareerService(locker *store.Locker, careerRepo career.CareerRepository, employeeRepo employee.EmployeeRepository) career.CareerService {
	return &CareerServiceImpl{
		locker:       locker,
		careerRepo:   careerRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *CareerServiceImpl) AddMilestone(ctx context.Context, req career.CreateMilestoneRequest) (career.MilestoneResponse, error) {
	if err := req.Validate(); err != nil {
		return career.MilestoneResponse{}, err
	}

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return career.MilestoneResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if _, ok := roster.Get(req.EmployeeID); !ok {
		return career.MilestoneResponse{}, career.ErrEmployeeNotFound
	}

	unlock := s.locker.Lock(store.KeyCareers)
	defer unlock()

	ledger, err := s.careerRepo.Load(ctx)
	if err != nil {
		return career.MilestoneResponse{}, fmt.Errorf("failed to load career path: %w", err)
	}

	m := career.Milestone{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Type:       career.Type(req.Type),
		Title:      req.Title,
		FromValue:  req.FromValue,
		ToValue:    req.ToValue,
		Date:       req.Date,
		Notes:      req.Notes,
	}
	if _, err := s.careerRepo.Save(ctx, ledger.Put(m)); err != nil {
		return career.MilestoneResponse{}, fmt.Errorf("failed to save milestone: %w", err)
	}
	return career.ToResponse(m), nil
}

func (s *CareerServiceImpl) GetPath(ctx context.Context, employeeID string) ([]career.MilestoneResponse, error) {
	ledger, err := s.careerRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load career path: %w", err)
	}

	path := ledger.Path(employeeID)
	resp := make([]career.MilestoneResponse, 0, len(path))
	for _, m := range path {
		resp = append(resp, career.ToResponse(m))
	}
	return resp, nil
}

func (s *CareerServiceImpl) DeleteMilestone(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyCareers)
	defer unlock()

	ledger, err := s.careerRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load career path: %w", err)
	}
	next, err := ledger.Remove(id)
	if err != nil {
		return err
	}
	if _, err := s.careerRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save career path: %w", err)
	}
	return nil
}
