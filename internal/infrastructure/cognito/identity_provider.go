// Package cognito signs users in against a Cognito user pool app client.
package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/kwawicks/kwawicks-api/internal/application/ports"
	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// InitiateAuthAPI is the one Cognito call the adapter makes.
type InitiateAuthAPI interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

var _ InitiateAuthAPI = (*cognitoidentityprovider.Client)(nil)

// IdentityProvider implements ports.IdentityProvider with USER_PASSWORD_AUTH and REFRESH_TOKEN_AUTH.
type IdentityProvider struct {
	api      InitiateAuthAPI
	clientID string
	log      *logger.Logger
}

var _ ports.IdentityProvider = (*IdentityProvider)(nil)

// NewClient builds a Cognito client for region.
func NewClient(cfg aws.Config, region string) *cognitoidentityprovider.Client {
	return cognitoidentityprovider.NewFromConfig(cfg, func(o *cognitoidentityprovider.Options) {
		if region != "" {
			o.Region = region
		}
	})
}

func NewIdentityProvider(api InitiateAuthAPI, appClientID string, log *logger.Logger) *IdentityProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &IdentityProvider{api: api, clientID: appClientID, log: log}
}

func (p *IdentityProvider) PasswordAuth(ctx context.Context, username, secret string) (*ports.AuthTokens, error) {
	out, err := p.api.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": secret,
		},
	})
	if err != nil {
		return nil, p.mapError("password auth", username, err)
	}
	if out.ChallengeName == types.ChallengeNameTypeNewPasswordRequired {
		return nil, domain.ErrNewPasswordRequired
	}
	if out.AuthenticationResult == nil {
		return nil, domain.ErrAuthFailed
	}
	return toTokens(out.AuthenticationResult, true), nil
}

func (p *IdentityProvider) RefreshAuth(ctx context.Context, refreshToken string) (*ports.AuthTokens, error) {
	out, err := p.api.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		return nil, p.mapError("refresh auth", "", err)
	}
	if out.AuthenticationResult == nil {
		return nil, domain.ErrAuthFailed
	}
	return toTokens(out.AuthenticationResult, false), nil
}

func (p *IdentityProvider) mapError(op, username string, err error) error {
	var (
		notAuthorized *types.NotAuthorizedException
		notFound      *types.UserNotFoundException
		notConfirmed  *types.UserNotConfirmedException
	)
	switch {
	case errors.As(err, &notAuthorized), errors.As(err, &notFound):
		return domain.ErrUnauthorized
	case errors.As(err, &notConfirmed):
		return domain.ErrUserNotConfirmed
	}
	ev := p.log.Error().Err(err).Str("op", op)
	if username != "" {
		ev = ev.Str("username", username)
	}
	ev.Msg("cognito: initiate auth failed")
	return fmt.Errorf("%w: cognito %s: %w", domain.ErrDependency, op, err)
}

func toTokens(r *types.AuthenticationResultType, withRefresh bool) *ports.AuthTokens {
	t := &ports.AuthTokens{
		AccessToken: aws.ToString(r.AccessToken),
		IdToken:     aws.ToString(r.IdToken),
		ExpiresIn:   r.ExpiresIn,
		TokenType:   aws.ToString(r.TokenType),
	}
	if withRefresh {
		t.RefreshToken = aws.ToString(r.RefreshToken)
	}
	if t.TokenType == "" {
		t.TokenType = "Bearer"
	}
	return t
}
