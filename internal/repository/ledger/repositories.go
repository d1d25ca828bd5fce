package ledger

import (
	"context"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/leave"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/department"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
)

type employeeRepositoryImpl struct {
	store store.Store
}

func NewEmployeeRepository(st store.Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: st}
}

func (r *employeeRepositoryImpl) Load(ctx context.Context) (employee.Roster, error) {
	items, version, err := loadItems[employee.Employee](ctx, r.store, store.KeyEmployees)
	if err != nil {
		return employee.Roster{}, err
	}
	return employee.NewRoster(items, version), nil
}

func (r *employeeRepositoryImpl) Save(ctx context.Context, roster employee.Roster) (employee.Roster, error) {
	version, err := saveItems(ctx, r.store, store.KeyEmployees, roster.All(), roster.Version)
	if err != nil {
		return roster, err
	}
	roster.Version = version
	return roster, nil
}

type attendanceRepositoryImpl struct {
	store store.Store
}

func NewAttendanceRepository(st store.Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: st}
}

func (r *attendanceRepositoryImpl) Load(ctx context.Context) (attendance.Ledger, error) {
	items, version, err := loadItems[attendance.Entry](ctx, r.store, store.KeyAttendance)
	if err != nil {
		return attendance.Ledger{}, err
	}
	return attendance.NewLedger(items, version), nil
}

func (r *attendanceRepositoryImpl) Save(ctx context.Context, l attendance.Ledger) (attendance.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyAttendance, l.Entries(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type shiftRepositoryImpl struct {
	store store.Store
}

func NewShiftRepository(st store.Store) shift.ShiftRepository {
	return &shiftRepositoryImpl{store: st}
}

func (r *shiftRepositoryImpl) Load(ctx context.Context) (shift.Catalog, error) {
	items, version, err := loadItems[shift.Shift](ctx, r.store, store.KeyShifts)
	if err != nil {
		return shift.Catalog{}, err
	}
	return shift.NewCatalog(items, version), nil
}

func (r *shiftRepositoryImpl) Save(ctx context.Context, c shift.Catalog) (shift.Catalog, error) {
	version, err := saveItems(ctx, r.store, store.KeyShifts, c.All(), c.Version)
	if err != nil {
		return c, err
	}
	c.Version = version
	return c, nil
}

type adjustmentRepositoryImpl struct {
	store store.Store
}

func NewAdjustmentRepository(st store.Store) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{store: st}
}

func (r *adjustmentRepositoryImpl) Load(ctx context.Context) (adjustment.Ledger, error) {
	items, version, err := loadItems[adjustment.Adjustment](ctx, r.store, store.KeyAdjustments)
	if err != nil {
		return adjustment.Ledger{}, err
	}
	return adjustment.NewLedger(items, version), nil
}

func (r *adjustmentRepositoryImpl) Save(ctx context.Context, l adjustment.Ledger) (adjustment.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyAdjustments, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type leaveRepositoryImpl struct {
	store store.Store
}

func NewLeaveRepository(st store.Store) leave.LeaveRepository {
	return &leaveRepositoryImpl{store: st}
}

func (r *leaveRepositoryImpl) Load(ctx context.Context) (leave.Ledger, error) {
	items, version, err := loadItems[leave.Request](ctx, r.store, store.KeyLeaves)
	if err != nil {
		return leave.Ledger{}, err
	}
	return leave.NewLedger(items, version), nil
}

func (r *leaveRepositoryImpl) Save(ctx context.Context, l leave.Ledger) (leave.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyLeaves, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type documentRepositoryImpl struct {
	store store.Store
}

func NewDocumentRepository(st store.Store) document.DocumentRepository {
	return &documentRepositoryImpl{store: st}
}

func (r *documentRepositoryImpl) Load(ctx context.Context) (document.Ledger, error) {
	items, version, err := loadItems[document.Document](ctx, r.store, store.KeyDocuments)
	if err != nil {
		return document.Ledger{}, err
	}
	return document.NewLedger(items, version), nil
}

func (r *documentRepositoryImpl) Save(ctx context.Context, l document.Ledger) (document.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyDocuments, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type careerRepositoryImpl struct {
	store store.Store
}

func NewCareerRepository(st store.Store) career.CareerRepository {
	return &careerRepositoryImpl{store: st}
}

func (r *careerRepositoryImpl) Load(ctx context.Context) (career.Ledger, error) {
	items, version, err := loadItems[career.Milestone](ctx, r.store, store.KeyCareers)
	if err != nil {
		return career.Ledger{}, err
	}
	return career.NewLedger(items, version), nil
}

func (r *careerRepositoryImpl) Save(ctx context.Context, l career.Ledger) (career.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyCareers, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type branchRepositoryImpl struct {
	store store.Store
}

func NewBranchRepository(st store.Store) branch.BranchRepository {
	return &branchRepositoryImpl{store: st}
}

func (r *branchRepositoryImpl) Load(ctx context.Context) (branch.Ledger, error) {
	items, version, err := loadItems[branch.Branch](ctx, r.store, store.KeyBranches)
	if err != nil {
		return branch.Ledger{}, err
	}
	return branch.NewLedger(items, version), nil
}

func (r *branchRepositoryImpl) Save(ctx context.Context, l branch.Ledger) (branch.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyBranches, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}

type departmentRepositoryImpl struct {
	store store.Store
}

func NewDepartmentRepository(st store.Store) department.DepartmentRepository {
	return &departmentRepositoryImpl{store: st}
}

func (r *departmentRepositoryImpl) Load(ctx context.Context) (department.Ledger, error) {
	items, version, err := loadItems[department.Department](ctx, r.store, store.KeyDepartments)
	if err != nil {
		return department.Ledger{}, err
	}
	return department.NewLedger(items, version), nil
}

func (r *departmentRepositoryImpl) Save(ctx context.Context, l department.Ledger) (department.Ledger, error) {
	version, err := saveItems(ctx, r.store, store.KeyDepartments, l.All(), l.Version)
	if err != nil {
		return l, err
	}
	l.Version = version
	return l, nil
}
