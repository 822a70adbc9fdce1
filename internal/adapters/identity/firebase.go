// Package identity adapts Firebase Authentication to the provider port.
// Administrative operations (create, verify, revoke) go through the Admin
// SDK; password sign-in goes through the Identity Toolkit REST surface, which
// the Admin SDK does not expose.
package identity

import (
	"context"
	"fmt"
	"strconv"

	"firebase.google.com/go/v4/auth"
	"github.com/peoplenest/payroll-backend/internal/core/ports/providers"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

type firebaseIdentity struct {
	auth    *auth.Client
	toolkit *identitytoolkit.RelyingpartyService
}

// NewFirebaseIdentity wires the Admin auth client and an Identity Toolkit
// service authenticated by the project's web API key.
func NewFirebaseIdentity(ctx context.Context, authClient *auth.Client, webAPIKey string) (providers.Identity, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(webAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init identity toolkit service: %w", err)
	}
	return &firebaseIdentity{auth: authClient, toolkit: svc.Relyingparty}, nil
}

func (f *firebaseIdentity) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	record, err := f.auth.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create identity for %s: %w", email, err)
	}
	return record.UID, nil
}

func (f *firebaseIdentity) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := f.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("token verification failed: %w", err)
	}
	return token.UID, nil
}

func (f *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := f.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens for %s: %w", uid, err)
	}
	return nil
}

func (f *firebaseIdentity) SignInWithPassword(ctx context.Context, email, password string) (*providers.SignInResult, error) {
	resp, err := f.toolkit.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("password sign-in rejected: %w", err)
	}
	return &providers.SignInResult{
		UID:          resp.LocalId,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    strconv.FormatInt(resp.ExpiresIn, 10),
	}, nil
}
