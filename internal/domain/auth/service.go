package auth

import "context"

type AuthService interface {
	// AdminLogin verifies the credential by bcrypt comparison and issues an
	// administrative token. Wrong username and wrong password are not
	// distinguished.
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)

	// WorkerLogin issues a self-service token for an existing personnel
	// number.
	WorkerLogin(ctx context.Context, req WorkerLoginRequest) (TokenResponse, error)

	// EnsureDefaultAdmin seeds the configured default credential when the
	// admin table is empty. Bootstrap convenience for first run; safe to call
	// on every start.
	EnsureDefaultAdmin(ctx context.Context) error
}
