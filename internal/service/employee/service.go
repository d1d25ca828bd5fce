package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	locker       *store.Locker
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	careerRepo   career.CareerRepository
}

func NewEmployeeService(
	locker *store.Locker,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	careerRepo career.CareerRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		locker:       locker,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		careerRepo:   careerRepo,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyEmployees)
	defer unlock()

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	if req.ShiftID != nil && *req.ShiftID != "" {
		if err := s.ensureShift(ctx, *req.ShiftID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.Email != "" && emailTaken(roster, req.Email, "") {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}
	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = timeutil.Today(time.Local)
	}

	newEmployee := employee.Employee{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		Department: req.Department,
		Branch:     req.Branch,
		Position:   req.Position,
		Salary:     req.Salary,
		IsCitizen:  req.IsCitizen,
		ShiftID:    req.ShiftID,
		Status:     status,
		JoinDate:   joinDate,
		Email:      req.Email,
		Phone:      req.Phone,
		IBAN:       normalizeIBAN(req.IBAN),
		IDNumber:   req.IDNumber,
	}

	if _, err := s.employeeRepo.Save(ctx, roster.Put(newEmployee)); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save employee: %w", err)
	}

	s.recordMilestones(ctx, []career.Milestone{{
		EmployeeID: newEmployee.ID,
		Type:       career.TypeHire,
		Title:      "Joined " + newEmployee.Department,
		ToValue:    newEmployee.Position,
		Date:       joinDate,
	}})

	slog.Info("Created employee", "employee_id", newEmployee.ID, "department", newEmployee.Department)
	return employee.ToResponse(newEmployee), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	e, ok := roster.Get(id)
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	matched := filter.ToFilter().Apply(roster.All())
	resp := make([]employee.EmployeeResponse, 0, len(matched))
	for _, e := range matched {
		resp = append(resp, employee.ToResponse(e))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyEmployees)
	defer unlock()

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	current, ok := roster.Get(req.ID)
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if req.ShiftID != nil && *req.ShiftID != "" {
		if err := s.ensureShift(ctx, *req.ShiftID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.Email != nil && *req.Email != "" && emailTaken(roster, *req.Email, req.ID) {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	updated := applyUpdate(current, req)
	if _, err := s.employeeRepo.Save(ctx, roster.Put(updated)); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save employee: %w", err)
	}

	s.recordMilestones(ctx, careerChanges(current, updated, timeutil.Today(time.Local)))
	return employee.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	unlock := s.locker.Lock(store.KeyEmployees)
	defer unlock()

	roster, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}
	next, err := roster.Remove(id)
	if err != nil {
		return err
	}
	if _, err := s.employeeRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}

	slog.Info("Deleted employee", "employee_id", id)
	return nil
}

func (s *EmployeeServiceImpl) ensureShift(ctx context.Context, shiftID string) error {
	catalog, err := s.shiftRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}
	if _, ok := catalog.Get(shiftID); !ok {
		return employee.ErrShiftNotFound
	}
	return nil
}

// recordMilestones appends career entries. Failures are logged only; the
// employee change has already been saved.
func (s *EmployeeServiceImpl) recordMilestones(ctx context.Context, milestones []career.Milestone) {
	if len(milestones) == 0 || s.careerRepo == nil {
		return
	}

	unlock := s.locker.Lock(store.KeyCareers)
	defer unlock()

	ledger, err := s.careerRepo.Load(ctx)
	if err != nil {
		slog.Warn("Failed to load career path", "error", err)
		return
	}
	for _, m := range milestones {
		m.ID = uuid.New().String()
		ledger = ledger.Put(m)
	}
	if _, err := s.careerRepo.Save(ctx, ledger); err != nil {
		slog.Warn("Failed to record career milestones", "employee_id", milestones[0].EmployeeID, "error", err)
		return
	}
	slog.Debug("Recorded career milestones", "employee_id", milestones[0].EmployeeID, "count", len(milestones))
}

func applyUpdate(e employee.Employee, req employee.UpdateEmployeeRequest) employee.Employee {
	if req.Name != nil {
		e.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Branch != nil {
		e.Branch = *req.Branch
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.IsCitizen != nil {
		e.IsCitizen = *req.IsCitizen
	}
	if req.ClearShift {
		e.ShiftID = nil
	} else if req.ShiftID != nil {
		id := *req.ShiftID
		e.ShiftID = &id
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	if req.JoinDate != nil {
		e.JoinDate = *req.JoinDate
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.IBAN != nil {
		e.IBAN = normalizeIBAN(*req.IBAN)
	}
	if req.IDNumber != nil {
		e.IDNumber = *req.IDNumber
	}
	return e
}

// careerChanges derives milestones from an employee edit.
func careerChanges(before, after employee.Employee, date string) []career.Milestone {
	var out []career.Milestone
	if before.Position != after.Position && after.Position != "" {
		out = append(out, career.Milestone{
			EmployeeID: after.ID,
			Type:       career.TypePromotion,
			Title:      "Position changed",
			FromValue:  before.Position,
			ToValue:    after.Position,
			Date:       date,
		})
	}
	if before.Department != after.Department || before.Branch != after.Branch {
		out = append(out, career.Milestone{
			EmployeeID: after.ID,
			Type:       career.TypeTransfer,
			Title:      "Transferred",
			FromValue:  before.Department + " / " + before.Branch,
			ToValue:    after.Department + " / " + after.Branch,
			Date:       date,
		})
	}
	if !before.Salary.Equal(after.Salary) {
		out = append(out, career.Milestone{
			EmployeeID: after.ID,
			Type:       career.TypeSalaryChange,
			Title:      "Salary changed",
			FromValue:  before.Salary.StringFixed(2),
			ToValue:    after.Salary.StringFixed(2),
			Date:       date,
		})
	}
	return out
}

func emailTaken(roster employee.Roster, email, exceptID string) bool {
	matches := roster.Where(func(e employee.Employee) bool {
		return e.ID != exceptID && strings.EqualFold(e.Email, email)
	})
	return len(matches) > 0
}

func normalizeIBAN(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
}
