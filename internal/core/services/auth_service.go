package services

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	portsrepo "github.com/peoplenest/payroll-backend/internal/core/ports/repositories"
	"github.com/peoplenest/payroll-backend/internal/utils"
)

type authService struct {
	userRepo portsrepo.UserRepository
	identity providers.Identity
}

// NewAuthService creates the identity-provider facade.
func NewAuthService(userRepo portsrepo.UserRepository, identity providers.Identity) *authService {
	return &authService{userRepo: userRepo, identity: identity}
}

// SignupSuperAdmin bootstraps the single super-admin identity. The
// existence check and the creation are not atomic; the provider's duplicate
// email error is the backstop for concurrent signups.
func (s *authService) SignupSuperAdmin(ctx context.Context, email, password, displayName string) (*domain.UserRecord, error) {
	exists, err := s.userRepo.SuperAdminExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check super admin existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: super admin already exists", apperrors.ErrDuplicate)
	}

	uid, err := s.identity.CreateIdentity(ctx, email, password, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create super admin identity: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash mirrored credential: %w", err)
	}
	record := domain.UserRecord{
		UID:          uid,
		Email:        email,
		DisplayName:  displayName,
		Role:         domain.RoleSuperAdmin,
		PasswordHash: hash,
		LoginEnable:  true,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.userRepo.SaveUser(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to mirror super admin record: %w", err)
	}
	return &record, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*providers.SignInResult, error) {
	result, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return result, nil
}

// Logout verifies the presented token and revokes every session of its uid.
func (s *authService) Logout(ctx context.Context, idToken string) error {
	uid, err := s.identity.VerifyToken(ctx, idToken)
	if err != nil {
		return fmt.Errorf("%w: invalid session token", apperrors.ErrUnauthorized)
	}
	if err := s.identity.RevokeSessions(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke sessions for %s: %w", uid, err)
	}
	return nil
}
