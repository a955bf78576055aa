package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	dbpkg "github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/infra/cache"
	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
)

// withDB opens and migrates the configured database, runs fn, and closes
// the pool before returning.
func withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg := boot()
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}
	return fn(cfg, db)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("database close failed", "error", err)
		}
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(*config.Config, *gorm.DB) error {
			fmt.Println("Schema up to date.")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo catalog and testimonials into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			n, err := dbpkg.Seed(db)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d rows.\n", n)

			// A stale catalog listing would hide the new services.
			if n > 0 && cfg.RedisAddr != "" {
				client := cache.NewRedisClient(cfg)
				defer client.Close()
				if err := cache.NewCatalog(client, cfg.CatalogCacheTTL).Invalidate(cmd.Context()); err != nil {
					logger.Warn("catalog cache not invalidated", "error", err)
				}
			}
			return nil
		})
	},
}
