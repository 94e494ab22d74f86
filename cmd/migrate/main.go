// Package main applies the embedded schema migrations to the configured postgres.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/url"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.Storage != config.StoragePostgres {
		log.Warnf("storage is [%s], migrating anyway", cfg.Storage)
	}

	dsn := fmt.Sprintf("%s?sslmode=disable", db.ConnString(db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: url.PathEscape(cfg.PostgresDBName),
	}))
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %s", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("close db: %s", err)
		}
	}()

	if err := db.Migrate(context.Background(), sqlDB, "postgres"); err != nil {
		log.Fatalf("migrate: %s", err)
	}
	log.Infoln("migrations applied")
}
