package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/jwt"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/storage"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st := store.NewMemoryStore()
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

	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	fileService := file.NewFileService(fileStorage)
	JWTService := jwt.NewJWTService("test-secret", "1h")

	documents := documentService.NewDocumentService(locker, documentRepo, employeeRepo, settingsRepo, fileService)

	router := NewRouter(RouterConfig{AppName: "retail-hr", Version: "test", Env: "test"}, JWTService, Handlers{
		Session:    NewSessionHandler(sessionService.NewSessionService(JWTService, employeeRepo)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(locker, employeeRepo, shiftRepo, careerRepo)),
		Shift:      NewShiftHandler(shiftService.NewShiftService(locker, shiftRepo, employeeRepo)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(locker, attendanceRepo, employeeRepo, shiftRepo, branchRepo, geo.Unsupported, 0)),
		Adjustment: NewAdjustmentHandler(adjustmentService.NewAdjustmentService(locker, adjustmentRepo, employeeRepo)),
		Payroll:    NewPayrollHandler(payrollService.NewPayrollService(employeeRepo, adjustmentRepo, settingsRepo)),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(locker, leaveRepo, employeeRepo)),
		Document:   NewDocumentHandler(documents),
		Career:     NewCareerHandler(careerService.NewCareerService(locker, careerRepo, employeeRepo)),
		Master:     NewMasterHandler(master.NewMasterService(locker, branchRepo, departmentRepo, employeeRepo)),
		Settings:   NewSettingsHandler(settingsService.NewSettingsService(locker, settingsRepo)),
		Assistant:  NewAssistantHandler(assistantService.NewAssistantService(nil, documentRepo, employeeRepo, fileService, 0)),
	})

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) login(role, employeeID string) string {
	s.t.Helper()

	rec, env := s.do(http.MethodPost, "/api/v1/session/role", "", map[string]string{
		"role":        role,
		"employee_id": employeeID,
	})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp session.SessionResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(s.t, resp.AccessToken)
	return resp.AccessToken
}

func (s *testServer) createEmployee(token, name string, salary int64) string {
	s.t.Helper()

	rec, env := s.do(http.MethodPost, "/api/v1/employees", token, map[string]any{
		"name":       name,
		"department": "Sales",
		"branch":     "Downtown",
		"salary":     salary,
		"is_citizen": true,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestRouter_RequiresSession(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PayrollForHR(t *testing.T) {
	s := newTestServer(t)
	hr := s.login("hr", "")
	s.createEmployee(hr, "Ali", 10000)

	rec, env := s.do(http.MethodGet, "/api/v1/payroll?start_month=2024-01", hr, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var run payroll.PayrollRunResponse
	require.NoError(t, json.Unmarshal(env.Data, &run))
	require.Len(t, run.Records, 1)
	assert.True(t, run.Records[0].Net.Equal(decimal.NewFromInt(12600)), run.Records[0].Net.String())
	assert.Equal(t, 1, run.Records[0].MonthCount)
}

func TestRouter_EmployeeSessionIsScoped(t *testing.T) {
	s := newTestServer(t)
	hr := s.login("hr", "")
	own := s.createEmployee(hr, "Ali", 10000)
	other := s.createEmployee(hr, "Sara", 8000)

	token := s.login("employee", own)

	rec, _ := s.do(http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/payroll/payslips/"+own+"?start_month=2024-01", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = s.do(http.MethodGet, "/api/v1/payroll/payslips/"+other+"?start_month=2024-01", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_SwitchRoleUnknownEmployee(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodPost, "/api/v1/session/role", "", map[string]string{
		"role":        "employee",
		"employee_id": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ShiftInUseCannotBeDeleted(t *testing.T) {
	s := newTestServer(t)
	hr := s.login("hr", "")

	rec, env := s.do(http.MethodPost, "/api/v1/shifts", hr, map[string]string{
		"name":       "Morning",
		"department": "Sales",
		"start_time": "08:00",
		"end_time":   "16:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ = s.do(http.MethodPost, "/api/v1/employees", hr, map[string]any{
		"name":       "Ali",
		"department": "Sales",
		"salary":     5000,
		"shift_id":   created.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = s.do(http.MethodDelete, "/api/v1/shifts/"+created.ID, hr, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
