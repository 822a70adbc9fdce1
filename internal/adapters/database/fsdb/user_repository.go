package fsdb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/peoplenest/payroll-backend/internal/apperrors"
	"github.com/peoplenest/payroll-backend/internal/core/domain"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the Firestore-backed identity mirror store.
func NewUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.UserRecord) error {
	_, err := r.client.Collection(usersCollection).Doc(user.UID).Set(ctx, user)
	return err
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	snaps, err := r.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	var user domain.UserRecord
	if err := snaps[0].DataTo(&user); err != nil {
		return nil, err
	}
	user.UID = snaps[0].Ref.ID
	return &user, nil
}

func (r *userRepository) SuperAdminExists(ctx context.Context) (bool, error) {
	snaps, err := r.client.Collection(usersCollection).
		Where("role", "==", domain.RoleSuperAdmin).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(snaps) > 0, nil
}

func (r *userRepository) UpdateUserLogin(ctx context.Context, uid string, passwordHash *string, patch domain.LoginPatch) error {
	var ups []firestore.Update
	if passwordHash != nil {
		ups = append(ups, firestore.Update{Path: "passwordHash", Value: *passwordHash})
	}
	if patch.LoginEnable != nil {
		ups = append(ups, firestore.Update{Path: "loginEnable", Value: *patch.LoginEnable})
	}
	if patch.AccLocked != nil {
		ups = append(ups, firestore.Update{Path: "accLocked", Value: *patch.AccLocked})
	}
	if len(ups) == 0 {
		return nil
	}
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, ups)
	return notFound(err, "user", uid)
}
