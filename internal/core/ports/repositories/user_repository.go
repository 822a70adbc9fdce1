package repositories

import (
	"context"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

// UserRepository is the store-facing contract for the `users` identity
// mirror collection, keyed by provider uid.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.UserRecord) error
	FindUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	SuperAdminExists(ctx context.Context) (bool, error)

	// UpdateUserLogin merges credential fields (password hash, loginEnable,
	// accLocked) onto the mirror document.
	UpdateUserLogin(ctx context.Context, uid string, passwordHash *string, patch domain.LoginPatch) error
}
