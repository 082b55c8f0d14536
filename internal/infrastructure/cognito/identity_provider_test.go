package cognito

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

type fakeInitiateAuth struct {
	in  *cognitoidentityprovider.InitiateAuthInput
	out *cognitoidentityprovider.InitiateAuthOutput
	err error
}

func (f *fakeInitiateAuth) InitiateAuth(_ context.Context, in *cognitoidentityprovider.InitiateAuthInput, _ ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	f.in = in
	return f.out, f.err
}

func TestPasswordAuth_Success(t *testing.T) {
	fake := &fakeInitiateAuth{out: &cognitoidentityprovider.InitiateAuthOutput{
		AuthenticationResult: &types.AuthenticationResultType{
			AccessToken:  aws.String("access"),
			IdToken:      aws.String("id"),
			RefreshToken: aws.String("refresh"),
			ExpiresIn:    3600,
		},
	}}
	p := NewIdentityProvider(fake, "app-client", nil)

	tokens, err := p.PasswordAuth(context.Background(), "driver01", "123456")
	require.NoError(t, err)

	assert.Equal(t, types.AuthFlowTypeUserPasswordAuth, fake.in.AuthFlow)
	assert.Equal(t, "app-client", aws.ToString(fake.in.ClientId))
	assert.Equal(t, map[string]string{"USERNAME": "driver01", "PASSWORD": "123456"}, fake.in.AuthParameters)

	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "id", tokens.IdToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, int32(3600), tokens.ExpiresIn)
	assert.Equal(t, "Bearer", tokens.TokenType)
}

func TestPasswordAuth_Challenges(t *testing.T) {
	fake := &fakeInitiateAuth{out: &cognitoidentityprovider.InitiateAuthOutput{
		ChallengeName: types.ChallengeNameTypeNewPasswordRequired,
		Session:       aws.String("session"),
	}}
	_, err := NewIdentityProvider(fake, "c", nil).PasswordAuth(context.Background(), "u", "123456")
	assert.ErrorIs(t, err, domain.ErrNewPasswordRequired)

	fake.out = &cognitoidentityprovider.InitiateAuthOutput{}
	_, err = NewIdentityProvider(fake, "c", nil).PasswordAuth(context.Background(), "u", "123456")
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestPasswordAuth_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"not authorized", &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}, domain.ErrUnauthorized},
		{"user not found", &types.UserNotFoundException{}, domain.ErrUnauthorized},
		{"not confirmed", &types.UserNotConfirmedException{}, domain.ErrUserNotConfirmed},
		{"throttled", &types.TooManyRequestsException{}, domain.ErrDependency},
		{"network", errors.New("dial tcp: i/o timeout"), domain.ErrDependency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeInitiateAuth{err: tc.err}
			_, err := NewIdentityProvider(fake, "c", nil).PasswordAuth(context.Background(), "u", "123456")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPasswordAuth_LogsDependencyFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})
	fake := &fakeInitiateAuth{err: errors.New("boom")}

	_, err := NewIdentityProvider(fake, "c", log).PasswordAuth(context.Background(), "driver01", "123456")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"username":"driver01"`)
	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, buf.String(), "123456")
}

func TestRefreshAuth(t *testing.T) {
	fake := &fakeInitiateAuth{out: &cognitoidentityprovider.InitiateAuthOutput{
		AuthenticationResult: &types.AuthenticationResultType{
			AccessToken:  aws.String("access2"),
			IdToken:      aws.String("id2"),
			RefreshToken: aws.String("should-not-leak"),
			TokenType:    aws.String("Bearer"),
			ExpiresIn:    300,
		},
	}}
	p := NewIdentityProvider(fake, "c", nil)

	tokens, err := p.RefreshAuth(context.Background(), "rt")
	require.NoError(t, err)
	assert.Equal(t, types.AuthFlowTypeRefreshTokenAuth, fake.in.AuthFlow)
	assert.Equal(t, "rt", fake.in.AuthParameters["REFRESH_TOKEN"])
	assert.Equal(t, "access2", tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)

	fake.err = &types.NotAuthorizedException{}
	_, err = p.RefreshAuth(context.Background(), "expired")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	fake.err = nil
	fake.out = &cognitoidentityprovider.InitiateAuthOutput{}
	_, err = p.RefreshAuth(context.Background(), "rt")
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}
