package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/config"
	"github.com/cmlabs-hris/retail-hr/internal/domain/assistant"
	"github.com/cmlabs-hris/retail-hr/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/retail-hr/internal/handler/http"
	assistantClient "github.com/cmlabs-hris/retail-hr/internal/pkg/assistant"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/cron"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/database"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/jwt"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/storage"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/cmlabs-hris/retail-hr/internal/repository/postgresql"
	adjustmentService "github.com/cmlabs-hris/retail-hr/internal/service/adjustment"
	assistantService "github.com/cmlabs-hris/retail-hr/internal/service/assistant"
	attendanceService "github.com/cmlabs-hris/retail-hr/internal/service/attendance"
	careerService "github.com/cmlabs-hris/retail-hr/internal/service/career"
	documentService "github.com/cmlabs-hris/retail-hr/internal/service/document"
	employeeService "github.com/cmlabs-hris/retail-hr/internal/service/employee"
	"github.com/cmlabs-hris/retail-hr/internal/service/file"
	leaveService "github.com/cmlabs-hris/retail-hr/internal/service/leave"
	"github.com/cmlabs-hris/retail-hr/internal/service/master"
	payrollService "github.com/cmlabs-hris/retail-hr/internal/service/payroll"
	sessionService "github.com/cmlabs-hris/retail-hr/internal/service/session"
	settingsService "github.com/cmlabs-hris/retail-hr/internal/service/settings"
	shiftService "github.com/cmlabs-hris/retail-hr/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	switch cfg.Store.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()
		if err := postgresql.Migrate(ctx, db); err != nil {
			log.Fatal("Error migrating database: ", err)
		}
		st = postgresql.NewLedgerStore(db)
	default:
		slog.Warn("Using in-memory store, data is lost on restart")
		st = store.NewMemoryStore()
	}
	locker := store.NewLocker()

	employeeRepo := ledger.NewEmployeeRepository(st)
	attendanceRepo := ledger.NewAttendanceRepository(st)
	shiftRepo := ledger.NewShiftRepository(st)
	adjustmentRepo := ledger.NewAdjustmentRepository(st)
	leaveRepo := ledger.NewLeaveRepository(st)
	documentRepo := ledger.NewDocumentRepository(st)
	careerRepo := ledger.NewCareerRepository(st)
	branchRepo := ledger.NewBranchRepository(st)
	departmentRepo := ledger.NewDepartmentRepository(st)
	settingsRepo := ledger.NewSettingsRepository(st)

	if cfg.App.SeedDefaults {
		if err := fixtures.NewSeeder(branchRepo, departmentRepo, shiftRepo).Seed(ctx); err != nil {
			log.Fatal("Failed to seed defaults: ", err)
		}
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileService := file.NewFileService(fileStorage)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var client assistant.Client
	if cfg.Assistant.Enabled() {
		client = assistantClient.NewClient(assistantClient.Config{
			BaseURL: cfg.Assistant.BaseURL,
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
			Timeout: cfg.Assistant.Timeout,
		})
	} else {
		slog.Info("Assistant disabled, ASSISTANT_API_KEY is not set")
	}

	employeeService := employeeService.NewEmployeeService(locker, employeeRepo, shiftRepo, careerRepo)
	shiftService := shiftService.NewShiftService(locker, shiftRepo, employeeRepo)
	attendanceService := attendanceService.NewAttendanceService(
		locker,
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		branchRepo,
		geo.Unsupported,
		cfg.Geo.CaptureTimeout,
	)
	adjustmentService := adjustmentService.NewAdjustmentService(locker, adjustmentRepo, employeeRepo)
	payrollService := payrollService.NewPayrollService(employeeRepo, adjustmentRepo, settingsRepo)
	leaveService := leaveService.NewLeaveService(locker, leaveRepo, employeeRepo)
	careerService := careerService.NewCareerService(locker, careerRepo, employeeRepo)
	masterService := master.NewMasterService(locker, branchRepo, departmentRepo, employeeRepo)
	settingsService := settingsService.NewSettingsService(locker, settingsRepo)
	documentService := documentService.NewDocumentService(locker, documentRepo, employeeRepo, settingsRepo, fileService)
	assistantService := assistantService.NewAssistantService(client, documentRepo, employeeRepo, fileService, cfg.Assistant.Timeout)
	sessionService := sessionService.NewSessionService(JWTService, employeeRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, appHTTP.Handlers{
		Session:    appHTTP.NewSessionHandler(sessionService),
		Employee:   appHTTP.NewEmployeeHandler(employeeService),
		Shift:      appHTTP.NewShiftHandler(shiftService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService),
		Adjustment: appHTTP.NewAdjustmentHandler(adjustmentService),
		Payroll:    appHTTP.NewPayrollHandler(payrollService),
		Leave:      appHTTP.NewLeaveHandler(leaveService),
		Document:   appHTTP.NewDocumentHandler(documentService),
		Career:     appHTTP.NewCareerHandler(careerService),
		Master:     appHTTP.NewMasterHandler(masterService),
		Settings:   appHTTP.NewSettingsHandler(settingsService),
		Assistant:  appHTTP.NewAssistantHandler(assistantService),
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewDocumentJobs(documentService, cfg.Documents.ExpiryScanInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "store", cfg.Store.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
