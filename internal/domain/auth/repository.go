package auth

import "context"

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (AdminCredential, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, username string, passwordHash string) (AdminCredential, error)
}
