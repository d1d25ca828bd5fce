package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	locker         *store.Locker
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	branchRepo     branch.BranchRepository
	locator        geo.Locator
	captureTimeout time.Duration
}

// NewAttendanceService builds the service. locator is used when a request
// carries no position of its own; pass geo.Unsupported when the server has
// none.
func NewAttendanceService(
	locker *store.Locker,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	branchRepo branch.BranchRepository,
	locator geo.Locator,
	captureTimeout time.Duration,
) attendance.AttendanceService {
	if locator == nil {
		locator = geo.Unsupported
	}
	return &AttendanceServiceImpl{
		locker:         locker,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		branchRepo:     branchRepo,
		locator:        locator,
		captureTimeout: captureTimeout,
	}
}

type snapshot struct {
	ledger   attendance.Ledger
	roster   employee.Roster
	catalog  shift.Catalog
	branches branch.Ledger
}

// loadSnapshot reads the ledgers an attendance operation needs in parallel.
func (s *AttendanceServiceImpl) loadSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l, err := s.attendanceRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		snap.ledger = l
		return nil
	})
	g.Go(func() error {
		r, err := s.employeeRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		snap.roster = r
		return nil
	})
	g.Go(func() error {
		c, err := s.shiftRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load shifts: %w", err)
		}
		snap.catalog = c
		return nil
	})
	g.Go(func() error {
		b, err := s.branchRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load branches: %w", err)
		}
		snap.branches = b
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (s *AttendanceServiceImpl) GetEntry(ctx context.Context, employeeID, date string) (attendance.EntryResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	e, ok := snap.ledger.EntryFor(employeeID, date)
	if !ok {
		return attendance.EntryResponse{}, attendance.ErrEntryNotFound
	}
	return s.toResponse(snap, e), nil
}

func (s *AttendanceServiceImpl) ListEntries(ctx context.Context, employeeID, month string) ([]attendance.EntryResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var entries []attendance.Entry
	if month != "" {
		entries = snap.ledger.ForMonth(employeeID, month)
	} else {
		entries = snap.ledger.ForEmployee(employeeID)
	}

	resp := make([]attendance.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, s.toResponse(snap, e))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) UpsertEntry(ctx context.Context, req attendance.UpsertEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyAttendance)
	defer unlock()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	if _, ok := snap.roster.Get(req.EmployeeID); !ok {
		return attendance.EntryResponse{}, attendance.ErrEmployeeNotFound
	}

	current, _ := snap.ledger.EntryFor(req.EmployeeID, req.Date)
	next := attendance.Entry{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     attendance.Status(req.Status),
		ClockIn:    req.ClockIn,
		ClockOut:   req.ClockOut,
		Location:   current.Location,
	}
	next.Location = s.captureOnWork(ctx, current, next, req.Location)

	if _, err := s.attendanceRepo.Save(ctx, snap.ledger.Upsert(next)); err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return s.toResponse(snap, next), nil
}

func (s *AttendanceServiceImpl) RecordClock(ctx context.Context, req attendance.RecordClockRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	unlock := s.locker.Lock(store.KeyAttendance)
	defer unlock()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return attendance.EntryResponse{}, err
	}
	emp, ok := snap.roster.Get(req.EmployeeID)
	if !ok {
		return attendance.EntryResponse{}, attendance.ErrEmployeeNotFound
	}

	current, found := snap.ledger.EntryFor(req.EmployeeID, req.Date)
	if !found {
		current = attendance.Entry{EmployeeID: req.EmployeeID, Date: req.Date}
	}
	next := attendance.ApplyClock(current, found, attendance.ClockChange{
		ClockIn:  req.ClockIn,
		ClockOut: req.ClockOut,
	}, snap.catalog.StartTimeFor(emp))
	next.Location = s.captureOnWork(ctx, current, next, req.Location)

	if _, err := s.attendanceRepo.Save(ctx, snap.ledger.Upsert(next)); err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	slog.Info("Recorded clock", "employee_id", next.EmployeeID, "date", next.Date, "status", next.Status)
	return s.toResponse(snap, next), nil
}

func (s *AttendanceServiceImpl) BulkSetStatus(ctx context.Context, req attendance.BulkStatusRequest) ([]attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(store.KeyAttendance)
	defer unlock()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range req.EmployeeIDs {
		if _, ok := snap.roster.Get(id); !ok {
			return nil, fmt.Errorf("%w: %s", attendance.ErrEmployeeNotFound, id)
		}
	}

	status := attendance.Status(req.Status)
	next := snap.ledger.BulkSetStatus(req.EmployeeIDs, req.Date, status)

	// One position is captured for the batch, only when the status counts as worked.
	if status.Worked() {
		var loc *geo.Location
		captured := false
		for _, id := range req.EmployeeIDs {
			before, _ := snap.ledger.EntryFor(id, req.Date)
			if before.Status == status {
				continue
			}
			if !captured {
				loc = s.capture(ctx, req.Location)
				captured = true
			}
			if loc != nil {
				e, _ := next.EntryFor(id, req.Date)
				e.Location = loc
				next = next.Upsert(e)
			}
		}
	}

	if _, err := s.attendanceRepo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}

	resp := make([]attendance.EntryResponse, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		e, _ := next.EntryFor(id, req.Date)
		resp = append(resp, s.toResponse(snap, e))
	}
	slog.Info("Bulk attendance status set", "date", req.Date, "status", req.Status, "count", len(req.EmployeeIDs))
	return resp, nil
}

func (s *AttendanceServiceImpl) GetDailyView(ctx context.Context, filter attendance.DailyViewFilter) (attendance.DailyViewResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DailyViewResponse{}, err
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return attendance.DailyViewResponse{}, err
	}
	view := snap.ledger.Daily(snap.roster.All(), filter.ToFilter())
	return attendance.ToDailyViewResponse(view), nil
}

func (s *AttendanceServiceImpl) GetMonthlyStats(ctx context.Context, employeeID, month string) (attendance.MonthlyStatsResponse, error) {
	if err := validateMonth(month); err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}
	if _, ok := snap.roster.Get(employeeID); !ok {
		return attendance.MonthlyStatsResponse{}, attendance.ErrEmployeeNotFound
	}
	return attendance.ToMonthlyStatsResponse(snap.ledger.MonthlyStats(employeeID, month)), nil
}

func (s *AttendanceServiceImpl) GetTeamAnalysis(ctx context.Context, month string) ([]attendance.TeamRowResponse, error) {
	rows, err := s.TeamAnalysis(ctx, month)
	if err != nil {
		return nil, err
	}
	resp := make([]attendance.TeamRowResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, attendance.ToTeamRowResponse(r))
	}
	return resp, nil
}

// TeamAnalysis returns the raw analysis rows for export renderers.
func (s *AttendanceServiceImpl) TeamAnalysis(ctx context.Context, month string) ([]attendance.TeamRow, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.ledger.TeamMonthlyAnalysis(snap.roster.All(), snap.catalog, month), nil
}

// captureOnWork tries to locate the device when the status moves to present
// or late. The previous location is kept otherwise, and when capture fails.
func (s *AttendanceServiceImpl) captureOnWork(ctx context.Context, before, after attendance.Entry, reported *geo.Location) *geo.Location {
	if !after.Status.Worked() || before.Status == after.Status {
		return after.Location
	}
	if loc := s.capture(ctx, reported); loc != nil {
		return loc
	}
	return after.Location
}

func (s *AttendanceServiceImpl) capture(ctx context.Context, reported *geo.Location) *geo.Location {
	locator := s.locator
	if reported != nil {
		locator = geo.Fixed(*reported)
	}
	return geo.Capture(ctx, locator, s.captureTimeout)
}

func (s *AttendanceServiceImpl) toResponse(snap snapshot, e attendance.Entry) attendance.EntryResponse {
	resp := attendance.ToEntryResponse(e)
	if e.Location == nil {
		return resp
	}
	emp, ok := snap.roster.Get(e.EmployeeID)
	if !ok {
		return resp
	}
	b, ok := snap.branches.ByName(emp.Branch)
	if !ok || b.Location == nil {
		return resp
	}
	d := geo.DistanceMeters(*b.Location, *e.Location)
	resp.DistanceMeters = &d
	return resp
}

func validateMonth(month string) error {
	if !validator.IsValidMonth(month) {
		return validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}
	return nil
}
