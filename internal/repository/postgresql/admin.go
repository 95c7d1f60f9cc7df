package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mobinh8585/attendance-system/internal/domain/auth"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}

// GetByUsername implements auth.AdminRepository.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (auth.AdminCredential, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash
		FROM admin
		WHERE username = $1
	`

	var cred auth.AdminCredential
	err := q.QueryRow(ctx, query, username).Scan(&cred.ID, &cred.Username, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminCredential{}, auth.ErrInvalidCredentials
		}
		return auth.AdminCredential{}, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return cred, nil
}

// Count implements auth.AdminRepository.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM admin`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

// Create implements auth.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, username string, passwordHash string) (auth.AdminCredential, error) {
	q := GetQuerier(ctx, r.db)

	cred := auth.AdminCredential{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	query := `INSERT INTO admin (id, username, password_hash) VALUES ($1, $2, $3)`
	if _, err := q.Exec(ctx, query, cred.ID, cred.Username, cred.PasswordHash); err != nil {
		return auth.AdminCredential{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return cred, nil
}
