package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	dbpkg "github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/infra/cache"
	"github.com/BruksfildServices01/service-on-wheel/internal/infra/receipts"
	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
	"github.com/BruksfildServices01/service-on-wheel/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := boot()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	// -------- Catalog cache (optional) --------
	var catalogCache *cache.Catalog
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg)
		defer client.Close()

		if err := cache.Ping(ctx, client); err != nil {
			logger.Warn("catalog cache disabled", "error", err)
		} else {
			catalogCache = cache.NewCatalog(client, cfg.CatalogCacheTTL)
			logger.Info("catalog cache enabled", "addr", cfg.RedisAddr)
		}
	}

	// -------- Audit sinks --------
	sinks := []audit.Sink{audit.New(db)}
	if cfg.ReceiptsBucket != "" {
		sinks = append(sinks, receipts.NewArchiver(receipts.NewS3Client(cfg), cfg.ReceiptsBucket))
		logger.Info("booking receipts enabled", "bucket", cfg.ReceiptsBucket)
	}
	dispatcher := audit.NewDispatcher(sinks...)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Gateway: dbpkg.NewGateway(db),
		Tokens:  auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Audit:   dispatcher,
		Cache:   catalogCache,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = drain(context.Background(), srv, dispatcher, db)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return drain(shutdownCtx, srv, dispatcher, db)
}

// drain stops the server, then flushes queued audit events while the
// database is still open, then closes the pool.
func drain(ctx context.Context, srv *http.Server, dispatcher *audit.Dispatcher, db *gorm.DB) error {
	err := srv.Shutdown(ctx)
	dispatcher.Close()
	closeDB(db)
	return err
}

func boot() *config.Config {
	cfg := config.Load()
	logger.Setup(cfg.IsProduction(), os.Stdout)
	if cfg.JWTSecret == "changeme" && cfg.IsProduction() {
		logger.Warn("JWT_SECRET is the default value")
	}
	return cfg
}
