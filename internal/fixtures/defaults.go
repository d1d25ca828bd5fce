package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/department"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/google/uuid"
)

// DefaultBranch is the store every fresh installation starts with.
func DefaultBranch() branch.Branch {
	return branch.Branch{
		ID:      uuid.New().String(),
		Name:    "Headquarters",
		Address: "Main Store",
	}
}

// DefaultDepartments returns the departments of a typical retail store.
func DefaultDepartments() []department.Department {
	names := []string{"Sales", "Cashier", "Warehouse", "Management"}
	out := make([]department.Department, 0, len(names))
	for _, name := range names {
		out = append(out, department.Department{ID: uuid.New().String(), Name: name})
	}
	return out
}

// DefaultShifts returns one day shift per department plus an evening sales
// shift. WorkHours is computed by shift.New.
func DefaultShifts() []shift.Shift {
	return []shift.Shift{
		shift.New(uuid.New().String(), "Sales Morning", "Sales", "08:00", "16:00"),
		shift.New(uuid.New().String(), "Sales Evening", "Sales", "14:00", "22:00"),
		shift.New(uuid.New().String(), "Cashier Day", "Cashier", "09:00", "17:00"),
		shift.New(uuid.New().String(), "Warehouse Early", "Warehouse", "06:00", "14:00"),
		shift.New(uuid.New().String(), "Office Hours", "Management", "08:00", "17:00"),
	}
}

// Seeder fills empty master-data ledgers with defaults. Ledgers that already
// hold data are left alone, so Seed is safe to run on every start.
type Seeder struct {
	branchRepo     branch.BranchRepository
	departmentRepo department.DepartmentRepository
	shiftRepo      shift.ShiftRepository
}

func NewSeeder(branchRepo branch.BranchRepository, departmentRepo department.DepartmentRepository, shiftRepo shift.ShiftRepository) *Seeder {
	return &Seeder{branchRepo: branchRepo, departmentRepo: departmentRepo, shiftRepo: shiftRepo}
}

func (s *Seeder) Seed(ctx context.Context) error {
	branches, err := s.branchRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load branches: %w", err)
	}
	if len(branches.All()) == 0 {
		if _, err := s.branchRepo.Save(ctx, branches.Put(DefaultBranch())); err != nil {
			return fmt.Errorf("seed branches: %w", err)
		}
		slog.Info("Seeded default branch")
	}

	departments, err := s.departmentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load departments: %w", err)
	}
	if len(departments.All()) == 0 {
		for _, d := range DefaultDepartments() {
			departments = departments.Put(d)
		}
		if _, err := s.departmentRepo.Save(ctx, departments); err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
		slog.Info("Seeded default departments")
	}

	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load shifts: %w", err)
	}
	if len(catalog.All()) == 0 {
		for _, sh := range DefaultShifts() {
			catalog = catalog.Put(sh)
		}
		if _, err := s.shiftRepo.Save(ctx, catalog); err != nil {
			return fmt.Errorf("seed shifts: %w", err)
		}
		slog.Info("Seeded default shifts")
	}

	return nil
}
