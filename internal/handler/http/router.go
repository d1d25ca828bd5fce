package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Session    SessionHandler
	Employee   EmployeeHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
	Adjustment AdjustmentHandler
	Payroll    PayrollHandler
	Leave      LeaveHandler
	Document   DocumentHandler
	Career     CareerHandler
	Master     MasterHandler
	Settings   SettingsHandler
	Assistant  AssistantHandler
}

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	allow := func(p session.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(p)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session/role", h.Session.SwitchRole)

		// Requires a session token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.SessionRequired)

			r.Get("/session", h.Session.Current)

			r.Route("/employees", func(r chi.Router) {
				r.With(allow(session.PermissionViewOwn)).Get("/{id}", h.Employee.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionEmployeeManage))
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.ListShifts)
				r.Get("/{id}", h.Shift.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionShiftManage))
					r.Post("/", h.Shift.CreateShift)
					r.Put("/{id}", h.Shift.UpdateShift)
					r.Delete("/{id}", h.Shift.DeleteShift)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionAttendanceClock))
					r.Post("/clock", h.Attendance.RecordClock)
					r.Get("/employees/{employeeID}", h.Attendance.ListEntries)
					r.Get("/employees/{employeeID}/stats", h.Attendance.GetMonthlyStats)
					r.Get("/employees/{employeeID}/{date}", h.Attendance.GetEntry)
				})

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionAttendanceManage))
					r.Put("/", h.Attendance.UpsertEntry)
					r.Post("/bulk-status", h.Attendance.BulkSetStatus)
					r.Get("/daily", h.Attendance.GetDailyView)
					r.Get("/team", h.Attendance.GetTeamAnalysis)
					r.Get("/team/export", h.Attendance.ExportTeamAnalysis)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.With(allow(session.PermissionViewOwn)).Get("/summary/{employeeID}", h.Adjustment.GetSummary)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionAdjustmentManage))
					r.Get("/", h.Adjustment.ListAdjustments)
					r.Post("/", h.Adjustment.CreateAdjustment)
					r.Delete("/{id}", h.Adjustment.DeleteAdjustment)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(allow(session.PermissionViewOwn)).Get("/payslips/{employeeID}", h.Payroll.GetPayslip)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionPayrollView))
					r.Get("/", h.Payroll.ComputePayroll)
					r.Get("/export/xlsx", h.Payroll.ExportXLSX)
					r.Get("/export/payslips", h.Payroll.ExportPayslips)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionLeaveCreate))
					r.Get("/", h.Leave.ListLeaves)
					r.Get("/{id}", h.Leave.GetLeave)
					r.Post("/", h.Leave.CreateLeave)
				})

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionLeaveApprove))
					r.Patch("/{id}/status", h.Leave.UpdateStatus)
					r.Delete("/{id}", h.Leave.DeleteLeave)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Use(allow(session.PermissionDocumentManage))
				r.Get("/", h.Document.ListDocuments)
				r.Get("/expiring", h.Document.ListExpiring)
				r.Post("/", h.Document.CreateDocument)
				r.Get("/{id}", h.Document.GetDocument)
				r.Put("/{id}", h.Document.UpdateDocument)
				r.Delete("/{id}", h.Document.DeleteDocument)
				r.Post("/{id}/file", h.Document.UploadFile)
				r.Get("/{id}/file", h.Document.DownloadFile)
				r.Post("/{id}/extract", h.Assistant.ExtractFromDocument)
			})

			r.Route("/careers", func(r chi.Router) {
				r.With(allow(session.PermissionViewOwn)).Get("/{employeeID}", h.Career.GetPath)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionCareerManage))
					r.Post("/", h.Career.AddMilestone)
					r.Delete("/milestones/{id}", h.Career.DeleteMilestone)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/branches", h.Master.ListBranches)
				r.Get("/branches/{id}", h.Master.GetBranch)
				r.Get("/departments", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(allow(session.PermissionMasterManage))
					r.Post("/branches", h.Master.CreateBranch)
					r.Put("/branches/{id}", h.Master.UpdateBranch)
					r.Delete("/branches/{id}", h.Master.DeleteBranch)
					r.Post("/departments", h.Master.CreateDepartment)
					r.Delete("/departments/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.GetSettings)
				r.With(allow(session.PermissionSettingsManage)).Put("/", h.Settings.UpdateSettings)
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Use(allow(session.PermissionDocumentManage))
				r.Post("/extract", h.Assistant.ExtractFromImage)
				r.Post("/advise", h.Assistant.Advise)
			})
		})
	})
	return r
}
