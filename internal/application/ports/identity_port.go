package ports

import "context"

// AuthTokens is what the identity provider issues on a successful sign-in.
// RefreshToken is empty on refresh.
type AuthTokens struct {
	AccessToken  string
	IdToken      string
	RefreshToken string
	ExpiresIn    int32
	TokenType    string
}

// IdentityProvider is the outbound port to the user directory. Adapters map
// provider failures onto domain errors (ErrUnauthorized, ErrUserNotConfirmed,
// ErrNewPasswordRequired, ErrDependency).
type IdentityProvider interface {
	// PasswordAuth signs the user in with username and secret (the PIN).
	PasswordAuth(ctx context.Context, username, secret string) (*AuthTokens, error)
	// RefreshAuth exchanges a refresh token for fresh access and ID tokens.
	RefreshAuth(ctx context.Context, refreshToken string) (*AuthTokens, error)
}
