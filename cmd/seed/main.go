// Command seed populates the plant catalog with the base records and the
// deterministically generated variants.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdantly/gardenmate/internal/catalog"
	"github.com/verdantly/gardenmate/internal/infra/config"
	"github.com/verdantly/gardenmate/internal/infra/plantrepo"
	"github.com/verdantly/gardenmate/pkg/logger"
)

func main() {
	fresh := flag.Bool("fresh", false, "delete existing catalog rows before seeding")
	flag.Parse()

	logg := logger.New().With("component", "seed")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		log.Fatal("POSTGRES_DSN must be set to seed the catalog")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse postgres dsn: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := plantrepo.NewPostgresRepository(pool)

	if *fresh {
		removed, err := repo.DeleteAll(ctx)
		if err != nil {
			log.Fatalf("clear catalog: %v", err)
		}
		logg.Info("catalog cleared", "removed", removed)
	}

	records := catalog.Expanded()
	created, skipped := 0, 0
	for _, rec := range records {
		_, exists, err := repo.GetByScientificName(ctx, rec.ScientificName)
		if err != nil {
			log.Fatalf("lookup %s: %v", rec.ScientificName, err)
		}
		if exists {
			skipped++
			continue
		}
		if _, err := repo.Insert(ctx, rec); err != nil {
			log.Fatalf("insert %s: %v", rec.ScientificName, err)
		}
		created++
	}

	total, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("count catalog: %v", err)
	}
	logg.Info("catalog seeded", "created", created, "skipped", skipped, "total", total)
	os.Exit(0)
}
