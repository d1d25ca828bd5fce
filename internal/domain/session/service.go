package session

import "context"

type SessionService interface {
	// SwitchRole issues a token carrying the chosen role
	SwitchRole(ctx context.Context, req SwitchRoleRequest) (SessionResponse, error)
}
