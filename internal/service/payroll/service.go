package payroll

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	adjustmentRepo adjustment.AdjustmentRepository
	settingsRepo   settings.SettingsRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	settingsRepo settings.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		adjustmentRepo: adjustmentRepo,
		settingsRepo:   settingsRepo,
	}
}

// Run loads a fresh snapshot of the ledgers and computes the payroll. Nothing
// is cached between calls.
func (s *PayrollServiceImpl) Run(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.Run, error) {
	if err := req.Validate(); err != nil {
		return payroll.Run{}, err
	}

	var (
		roster employee.Roster
		ledger adjustment.Ledger
		cfg    settings.Settings
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.employeeRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		roster = r
		return nil
	})
	g.Go(func() error {
		l, err := s.adjustmentRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load adjustments: %w", err)
		}
		ledger = l
		return nil
	})
	g.Go(func() error {
		c, err := s.settingsRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		cfg = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.Run{}, err
	}

	period := req.Period()
	employees := req.Filter().Apply(roster.All())
	records := payroll.ComputePayroll(employees, ledger.Active(), period, cfg.Rates())

	return payroll.Run{
		CompanyName: cfg.CompanyName,
		Currency:    cfg.Currency,
		Period:      period,
		Records:     records,
		Totals:      payroll.Summarize(records),
	}, nil
}

func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.PayrollRunResponse, error) {
	run, err := s.Run(ctx, req)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string, req payroll.ComputePayrollRequest) (payroll.PayrollRecordResponse, error) {
	req.Name, req.Department = "", ""
	run, err := s.Run(ctx, req)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	for _, r := range run.Records {
		if r.Employee.ID == employeeID {
			return payroll.ToRecordResponse(r), nil
		}
	}
	return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeNotFound
}
