package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// defaultCORSOrigins are the UI origins (Vite dev servers and the Amplify deployment).
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5174",
	"https://main.d137tsnrxezsdg.amplifyapp.com",
}

// Config groups the application configuration (read through Viper from env and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	AWS     AWSConfig
	Dynamo  DynamoConfig
	Cognito CognitoConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AWSConfig shared AWS settings.
type AWSConfig struct {
	Region string
}

// DynamoConfig DynamoDB settings. Endpoint is only set when talking to DynamoDB Local.
type DynamoConfig struct {
	TableName string
	Endpoint  string
}

// CognitoConfig user pool settings used for login and token verification.
type CognitoConfig struct {
	Region      string
	UserPoolID  string
	AppClientID string
}

// Issuer returns the user pool issuer URL, which is also the JWKS base URL.
func (c CognitoConfig) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.Region, c.UserPoolID)
}

// ErrMissingUserPool is returned by Load when COGNITO_USER_POOL_ID is not set.
var ErrMissingUserPool = errors.New("config: COGNITO_USER_POOL_ID is required")

// Load reads configuration from environment variables (and optionally from a file).
// Env vars win. Expected names: APP_ENV, HTTP_PORT, AWS_REGION, DYNAMO_TABLE_NAME, COGNITO_USER_POOL_ID, etc.
func Load() (*Config, error) {
	return fromViper(newViper())
}

// LoadStore is Load without the Cognito requirement, for tools that only touch the table.
func LoadStore() *Config {
	return readViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := readViper(v)
	if cfg.Cognito.UserPoolID == "" {
		return nil, ErrMissingUserPool
	}
	return cfg, nil
}

func readViper(v *viper.Viper) *Config {
	region := getString(v, "AWS_REGION", "af-south-1")
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "kwawicks-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getList(v, "CORS_ALLOWED_ORIGINS", defaultCORSOrigins),
		},
		AWS: AWSConfig{
			Region: region,
		},
		Dynamo: DynamoConfig{
			TableName: getString(v, "DYNAMO_TABLE_NAME", "kwawicks"),
			Endpoint:  getString(v, "DYNAMO_ENDPOINT", ""),
		},
		Cognito: CognitoConfig{
			Region:      getString(v, "COGNITO_REGION", region),
			UserPoolID:  getString(v, "COGNITO_USER_POOL_ID", ""),
			AppClientID: getString(v, "COGNITO_APP_CLIENT_ID", ""),
		},
	}
	return cfg
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getList reads a comma separated value; blank entries are dropped.
func getList(v *viper.Viper, key string, def []string) []string {
	raw := getString(v, key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
