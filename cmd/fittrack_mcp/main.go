// Package main runs the fittrack MCP server over stdio (for local assistants).
// The same tools are mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	fittrackmcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/streak"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage != config.StoragePostgres {
		log.Fatalf("mcp over stdio needs postgres storage, got: %s", cfg.Storage)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// nothing scrapes a stdio process
	metricsManager := metrics.NewTestManager()

	workouts := workout.NewService(workout.NewPsqlRepo(dbPool), metricsManager)
	// read-only tools, no streak cache to invalidate
	streaks := streak.NewService(workouts, nil, cfg.Location(), metricsManager)

	var provider nutrition.Provider = nutrition.NewPsqlProvider(dbPool)
	if cfg.NutritionProvider == config.NutritionProviderHTTP {
		provider = nutrition.NewHTTPProvider(cfg.NutritionAPIURL, nil)
	}
	cached := nutrition.NewCachedProvider(provider, nil, time.Duration(cfg.NutritionCacheTTLSeconds)*time.Second)
	aggregator := nutrition.NewAggregator(cached, cfg.Location(), metricsManager)

	server := fittrackmcp.NewServer(fittrackmcp.NewHandler(workouts, streaks, aggregator, cfg.Location()))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
