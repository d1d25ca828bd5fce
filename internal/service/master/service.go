package master

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/department"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/google/uuid"
)

type MasterService interface {
	// Branch operations
	CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	GetBranch(ctx context.Context, id string) (branch.BranchResponse, error)
	ListBranches(ctx context.Context) ([]branch.BranchResponse, error)
	UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error)
	DeleteBranch(ctx context.Context, id string) error

	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	locker         *store.Locker
	branchRepo     branch.BranchRepository
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewMasterService(
	locker *store.Locker,
	branchRepo branch.BranchRepository,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		locker:         locker,
		branchRepo:     branchRepo,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// ==================== BRANCH OPERATIONS ====================

func (s *masterServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyBranches)
	defer unlock()

	ledger, err := s.branchRepo.Load(ctx)
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to load branches: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if _, exists := ledger.ByName(name); exists {
		return branch.BranchResponse{}, branch.ErrBranchNameExists
	}

	b := branch.Branch{
		ID:       uuid.New().String(),
		Name:     name,
		Address:  req.Address,
		Location: req.Location,
	}
	if _, err := s.branchRepo.Save(ctx, ledger.Put(b)); err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to save branch: %w", err)
	}
	return branch.ToResponse(b), nil
}

func (s *masterServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	ledger, err := s.branchRepo.Load(ctx)
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to load branches: %w", err)
	}
	b, ok := ledger.Get(id)
	if !ok {
		return branch.BranchResponse{}, branch.ErrBranchNotFound
	}
	return branch.ToResponse(b), nil
}

func (s *masterServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	ledger, err := s.branchRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load branches: %w", err)
	}
	resp := make([]branch.BranchResponse, 0)
	for _, b := range ledger.All() {
		resp = append(resp, branch.ToResponse(b))
	}
	return resp, nil
}

func (s *masterServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyBranches)
	defer unlock()

	ledger, err := s.branchRepo.Load(ctx)
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to load branches: %w", err)
	}
	b, ok := ledger.Get(req.ID)
	if !ok {
		return branch.BranchResponse{}, branch.ErrBranchNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if other, exists := ledger.ByName(name); exists && other.ID != b.ID {
			return branch.BranchResponse{}, branch.ErrBranchNameExists
		}
		b.Name = name
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.Location != nil {
		b.Location = req.Location
	}

	if _, err := s.branchRepo.Save(ctx, ledger.Put(b)); err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to save branch: %w", err)
	}
	return branch.ToResponse(b), nil
}

func (s *masterServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyBranches, store.KeyEmployees)
	defer unlock()

	ledger, err := s.branchRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load branches: %w", err)
	}
	inUse, err := s.employeeNames(ctx, func(e employee.Employee) string { return e.Branch })
	if err != nil {
		return err
	}

	next, err := ledger.Remove(id, inUse)
	if err != nil {
		return err
	}
	if _, err := s.branchRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save branches: %w", err)
	}
	slog.Info("Deleted branch", "branch_id", id)
	return nil
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyDepartments)
	defer unlock()

	ledger, err := s.departmentRepo.Load(ctx)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to load departments: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if _, exists := ledger.ByName(name); exists {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}

	d := department.Department{ID: uuid.New().String(), Name: name}
	if _, err := s.departmentRepo.Save(ctx, ledger.Put(d)); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to save department: %w", err)
	}
	return department.ToResponse(d), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	ledger, err := s.departmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	resp := make([]department.DepartmentResponse, 0)
	for _, d := range ledger.All() {
		resp = append(resp, department.ToResponse(d))
	}
	return resp, nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyDepartments, store.KeyEmployees)
	defer unlock()

	ledger, err := s.departmentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}
	inUse, err := s.employeeNames(ctx, func(e employee.Employee) string { return e.Department })
	if err != nil {
		return err
	}

	next, err := ledger.Remove(id, inUse)
	if err != nil {
		return err
	}
	if _, err := s.departmentRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save departments: %w", err)
	}
	slog.Info("Deleted department", "department_id", id)
	return nil
}

// employeeNames returns a predicate reporting whether any employee carries
// the given name in the field selected by pick.
func (s *masterServiceImpl) employeeNames(ctx context.Context, pick func(employee.Employee) string) (func(string) bool, error) {
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	used := make(map[string]bool)
	for _, e := range roster.All() {
		used[strings.ToLower(pick(e))] = true
	}
	return func(name string) bool { return used[strings.ToLower(name)] }, nil
}
