package services

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
)

// AuthSvcFacade fronts the identity provider: super-admin bootstrap,
// password login and session revocation.
type AuthSvcFacade interface {
	// SignupSuperAdmin creates the one super-admin identity; it fails with a
	// duplicate error when one already exists.
	SignupSuperAdmin(ctx context.Context, email, password, displayName string) (*domain.UserRecord, error)

	Login(ctx context.Context, email, password string) (*providers.SignInResult, error)
	Logout(ctx context.Context, idToken string) error
}
