package auth

import "context"

// Service authenticates the operator account. Full user management is owned
// by the central auth service; this backend only guards its own API.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
