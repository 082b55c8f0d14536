// @title                       KwaWicks API
// @version                     1.0
// @description                 Clients, species stock and sign-in for the KwaWicks hub.
// @BasePath                    /
// @schemes                     http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <id token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kwawicks/kwawicks-api/internal/application/auth"
	"github.com/kwawicks/kwawicks-api/internal/application/usecase"
	"github.com/kwawicks/kwawicks-api/internal/infrastructure/cognito"
	"github.com/kwawicks/kwawicks-api/internal/infrastructure/dynamo"
	httpRouter "github.com/kwawicks/kwawicks-api/internal/interfaces/http"
	"github.com/kwawicks/kwawicks-api/pkg/config"
	"github.com/kwawicks/kwawicks-api/pkg/jwt"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("table", cfg.Dynamo.TableName).
		Msg("starting")

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("load AWS configuration")
	}

	ddb := dynamo.NewClient(awsCfg, cfg.Dynamo.Endpoint)
	clientRepo := dynamo.NewClientRepository(ddb, cfg.Dynamo.TableName)
	speciesRepo := dynamo.NewSpeciesRepository(ddb, cfg.Dynamo.TableName)

	idp := cognito.NewIdentityProvider(
		cognito.NewClient(awsCfg, cfg.Cognito.Region),
		cfg.Cognito.AppClientID,
		log,
	)
	if cfg.Cognito.AppClientID == "" {
		log.Warn().Msg("COGNITO_APP_CLIENT_ID is not set, login and refresh will fail")
	}
	authUC := auth.NewAuthUseCase(idp, cfg.Cognito.AppClientID != "")

	issuer := cfg.Cognito.Issuer()
	jwksCtx, stopJWKS := context.WithCancel(ctx)
	defer stopJWKS()
	keys, err := jwt.NewIssuerJWKS(jwksCtx, issuer)
	if err != nil {
		log.Fatal().Err(err).Str("issuer", issuer).Msg("user pool key set")
	}
	verifier := jwt.NewVerifier(issuer, keys)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: cfg.App.SwaggerFile,
		Log:         log,
		Registry:    reg,
		Routes: httpRouter.RouterDeps{
			AuthUC:    authUC,
			ClientUC:  usecase.NewClientUseCase(clientRepo),
			SpeciesUC: usecase.NewSpeciesUseCase(speciesRepo),
			Verifier:  verifier,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("stopped")
}
