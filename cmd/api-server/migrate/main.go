package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/social-wallet-api/pkg/config"
	"github.com/chainsafe/social-wallet-api/pkg/migrations/apidb"
	"github.com/chainsafe/social-wallet-api/pkg/pgutil"
	mghelper "github.com/chainsafe/social-wallet-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for social wallet database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	err = mghelper.RunMigrations(ctx, migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
