package auth

import (
	"context"
	"strings"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
	"github.com/kwawicks/kwawicks-api/internal/application/ports"
	"github.com/kwawicks/kwawicks-api/internal/domain"
)

const pinLength = 6

// AuthUseCase signs users in against the identity provider. It holds no state of its own.
type AuthUseCase struct {
	idp        ports.IdentityProvider
	configured bool
}

// NewAuthUseCase builds the use case. configured is false when no app client
// is set up; every call then fails with domain.ErrAuthNotConfigured.
func NewAuthUseCase(idp ports.IdentityProvider, configured bool) *AuthUseCase {
	return &AuthUseCase{idp: idp, configured: configured && idp != nil}
}

// Login checks the username and PIN and forwards them to the identity provider.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.UsernameOrEmail)
	pin := strings.TrimSpace(in.Password)
	if username == "" || pin == "" {
		return nil, domain.NewValidationError("", "Username and PIN are required.")
	}
	if !isSixDigitPIN(pin) {
		return nil, domain.NewValidationError("password", "PIN must be exactly 6 digits.")
	}
	if !uc.configured {
		return nil, domain.ErrAuthNotConfigured
	}

	tokens, err := uc.idp.PasswordAuth(ctx, username, pin)
	if err != nil {
		return nil, err
	}
	return toLoginResponse(tokens, true), nil
}

// Refresh exchanges a refresh token. The response never carries a refresh token.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.LoginResponse, error) {
	token := strings.TrimSpace(in.RefreshToken)
	if token == "" {
		return nil, domain.NewValidationError("refreshToken", "Refresh token is required.")
	}
	if !uc.configured {
		return nil, domain.ErrAuthNotConfigured
	}

	tokens, err := uc.idp.RefreshAuth(ctx, token)
	if err != nil {
		return nil, err
	}
	return toLoginResponse(tokens, false), nil
}

func isSixDigitPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func toLoginResponse(t *ports.AuthTokens, withRefresh bool) *dto.LoginResponse {
	out := &dto.LoginResponse{
		AccessToken: t.AccessToken,
		IdToken:     t.IdToken,
		ExpiresIn:   t.ExpiresIn,
		TokenType:   t.TokenType,
	}
	if out.TokenType == "" {
		out.TokenType = "Bearer"
	}
	if withRefresh && t.RefreshToken != "" {
		rt := t.RefreshToken
		out.RefreshToken = &rt
	}
	return out
}
