package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mobinh8585/attendance-system/internal/config"
	"github.com/mobinh8585/attendance-system/internal/domain/auth"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.AdminRepository
	worker.WorkerRepository
	jwt.Service
	adminCfg config.AdminConfig
}

func NewAuthService(adminRepo auth.AdminRepository, workerRepo worker.WorkerRepository, jwtService jwt.Service, adminCfg config.AdminConfig) auth.AuthService {
	return &AuthServiceImpl{
		AdminRepository:  adminRepo,
		WorkerRepository: workerRepo,
		Service:          jwtService,
		adminCfg:         adminCfg,
	}
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	cred, err := a.AdminRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAdminToken(cred.ID, cred.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create admin token: %w", err)
	}

	return auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt, IsAdmin: true}, nil
}

// WorkerLogin implements auth.AuthService. Workers identify themselves by
// personnel number alone, as the clock-in terminal always has.
func (a *AuthServiceImpl) WorkerLogin(ctx context.Context, req auth.WorkerLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	w, err := a.WorkerRepository.GetByPersonnelNumber(ctx, req.PersonnelNumber)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateWorkerToken(w.ID, w.PersonnelNumber)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create worker token: %w", err)
	}

	return auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt, IsAdmin: false}, nil
}

// EnsureDefaultAdmin implements auth.AuthService. Seeds the configured
// credential only when the admin table is empty, so first run works out of
// the box. The default is a bootstrap convenience, not a security posture.
func (a *AuthServiceImpl) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := a.AdminRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	if _, err := a.AdminRepository.Create(ctx, a.adminCfg.Username, string(hash)); err != nil {
		return err
	}

	slog.Warn("seeded default admin credential; change the password",
		"username", a.adminCfg.Username)
	return nil
}
