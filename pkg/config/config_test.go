package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("COGNITO_USER_POOL_ID", "af-south-1_pool")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "af-south-1", cfg.AWS.Region)
	assert.Equal(t, "af-south-1", cfg.Cognito.Region, "cognito region falls back to AWS_REGION")
	assert.Equal(t, "kwawicks", cfg.Dynamo.TableName)
	assert.Empty(t, cfg.Dynamo.Endpoint)
	assert.Equal(t, defaultCORSOrigins, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "https://cognito-idp.af-south-1.amazonaws.com/af-south-1_pool", cfg.Cognito.Issuer())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("COGNITO_USER_POOL_ID", "eu-west-1_abc")
	v.Set("COGNITO_REGION", "eu-west-1")
	v.Set("HTTP_PORT", "9090")
	v.Set("DYNAMO_ENDPOINT", "http://localhost:8000")
	v.Set("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Dynamo.Endpoint)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_abc", cfg.Cognito.Issuer())
}

func TestFromViper_InvalidPortFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("COGNITO_USER_POOL_ID", "pool")
	v.Set("HTTP_PORT", "eighty")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_MissingUserPool(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.ErrorIs(t, err, ErrMissingUserPool)
}

func TestReadViper_StoreOnly(t *testing.T) {
	v := viper.New()
	v.Set("DYNAMO_ENDPOINT", "http://localhost:8000")

	cfg := readViper(v)
	assert.Equal(t, "kwawicks", cfg.Dynamo.TableName)
	assert.Equal(t, "http://localhost:8000", cfg.Dynamo.Endpoint)
	assert.Empty(t, cfg.Cognito.UserPoolID)
}
