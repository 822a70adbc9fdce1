package providers

import "context"

// SignInResult is the session material returned by a successful
// email/password sign-in against the identity provider.
type SignInResult struct {
	UID          string `json:"uid"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// Identity is the external identity provider contract: identity creation,
// token verification/revocation and password sign-in. Failures from the
// provider are propagated unmodified; there is no retry layer.
type Identity interface {
	// CreateIdentity provisions a new identity and returns its uid. Raises on
	// duplicate email or invalid input.
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)

	// VerifyToken validates a session token and returns the uid it belongs
	// to. Raises on invalid or expired tokens.
	VerifyToken(ctx context.Context, idToken string) (string, error)

	// RevokeSessions invalidates every refresh token issued to uid.
	RevokeSessions(ctx context.Context, uid string) error

	// SignInWithPassword exchanges email/password credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error)
}
