package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type SessionHandler interface {
	SwitchRole(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.SessionService
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &sessionHandlerImpl{sessionService: sessionService}
}

// SwitchRole implements SessionHandler
func (h *sessionHandlerImpl) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req session.SwitchRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.SwitchRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role switched", result)
}

// Current implements SessionHandler
func (h *sessionHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	role, employeeID := sessionFromRequest(r)
	permissions := make([]string, 0)
	for _, p := range session.RolePermissions[role] {
		permissions = append(permissions, string(p))
	}
	response.Success(w, session.SessionResponse{
		Role:        string(role),
		EmployeeID:  employeeID,
		Permissions: permissions,
	})
}

// sessionFromRequest reads the role and employee claims placed on the
// context by jwtauth.Verifier.
func sessionFromRequest(r *http.Request) (session.Role, string) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", ""
	}
	role, _ := claims["role"].(string)
	employeeID, _ := claims["employee_id"].(string)
	return session.Role(role), employeeID
}

// actsForOther reports whether an employee session targets someone else.
func actsForOther(r *http.Request, employeeID string) bool {
	role, own := sessionFromRequest(r)
	return role != session.RoleHR && employeeID != own
}
