package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/jwt"
)

type SessionServiceImpl struct {
	jwtService   jwt.Service
	employeeRepo employee.EmployeeRepository
}

func NewSessionService(jwtService jwt.Service, employeeRepo employee.EmployeeRepository) session.SessionService {
	return &SessionServiceImpl{jwtService: jwtService, employeeRepo: employeeRepo}
}

func (s *SessionServiceImpl) SwitchRole(ctx context.Context, req session.SwitchRoleRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	role := session.Role(req.Role)
	employeeID := ""
	if role == session.RoleEmployee {
		roster, err := s.employeeRepo.Load(ctx)
		if err != nil {
			return session.SessionResponse{}, fmt.Errorf("failed to load employees: %w", err)
		}
		if _, ok := roster.Get(req.EmployeeID); !ok {
			return session.SessionResponse{}, session.ErrEmployeeNotFound
		}
		employeeID = req.EmployeeID
	}

	token, _, err := s.jwtService.GenerateSessionToken(string(role), employeeID)
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	permissions := make([]string, 0, len(session.RolePermissions[role]))
	for _, p := range session.RolePermissions[role] {
		permissions = append(permissions, string(p))
	}

	slog.Info("Switched session role", "role", role, "employee_id", employeeID)
	return session.SessionResponse{
		Role:        string(role),
		EmployeeID:  employeeID,
		AccessToken: token,
		Permissions: permissions,
	}, nil
}
