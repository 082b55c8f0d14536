// seed loads a species catalogue (CSV) into the DynamoDB table, creating the
// table first when it does not exist (DynamoDB Local).
//
// Usage: go run ./cmd/seed [path/species.csv]
// Defaults to species.csv in the current directory. Species whose name is
// already in the table are skipped, so the command can be re-run.
package main

import (
	"context"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/kwawicks/kwawicks-api/internal/application/usecase"
	"github.com/kwawicks/kwawicks-api/internal/infrastructure/dynamo"
	"github.com/kwawicks/kwawicks-api/pkg/config"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

func main() {
	path := "species.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg := config.LoadStore()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("open catalogue")
	}
	rows, err := readCatalogue(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("parse catalogue")
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("load AWS configuration")
	}
	ddb := dynamo.NewClient(awsCfg, cfg.Dynamo.Endpoint)

	created, err := dynamo.EnsureTable(ctx, ddb, cfg.Dynamo.TableName)
	if err != nil {
		log.Fatal().Err(err).Str("table", cfg.Dynamo.TableName).Msg("ensure table")
	}
	if created {
		log.Info().Str("table", cfg.Dynamo.TableName).Msg("table created")
	}

	species := usecase.NewSpeciesUseCase(dynamo.NewSpeciesRepository(ddb, cfg.Dynamo.TableName))
	existing, err := species.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list species")
	}
	known := make(map[string]bool, len(existing))
	for _, s := range existing {
		known[strings.ToLower(s.Name)] = true
	}

	var added, skipped int
	for _, row := range rows {
		if known[strings.ToLower(row.Name)] {
			skipped++
			continue
		}
		out, err := species.Create(ctx, row)
		if err != nil {
			log.Fatal().Err(err).Str("name", row.Name).Msg("create species")
		}
		known[strings.ToLower(out.Name)] = true
		added++
		log.Debug().Str("species_id", out.SpeciesID).Str("name", out.Name).Msg("species created")
	}
	log.Info().Int("added", added).Int("skipped", skipped).Str("file", path).Msg("seed complete")
}
