package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"

	"news-cms/internal/config"
	env "news-cms/pkg/config"

	pgRepo "news-cms/internal/infra/adapter/persistence/postgres"
	"news-cms/internal/infra/db"
	"news-cms/internal/observability/logging"
	"news-cms/internal/observability/metrics"

	authUC "news-cms/internal/usecase/auth"
	newsUC "news-cms/internal/usecase/news"

	hhttp "news-cms/internal/handler/http"
	hauth "news-cms/internal/handler/http/auth"
	hnews "news-cms/internal/handler/http/news"
	"news-cms/internal/handler/http/requestid"
)

// inventoryRefreshInterval controls how often the content gauges are
// recomputed from the database.
const inventoryRefreshInterval = 30 * time.Second

func main() {
	// .env はローカル開発用。存在しなければ環境変数のみ
	_ = godotenv.Load()

	logger := logging.NewLogger()
	if env.GetEnvString("LOG_FORMAT", "json") == "text" {
		logger = logging.NewTextLogger()
	}
	slog.SetDefault(logger)

	secCfg, err := config.LoadSecurityConfig()
	if err != nil {
		logger.Error("invalid security configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(database, secCfg, version, logger)

	runServer(logger, handler, database, version)
}

// initDatabase opens the database connection and runs migrations.
// DB_AUTO_MIGRATE=false skips the migration step for deployments that
// manage the schema out of band.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if env.GetEnvBool("DB_AUTO_MIGRATE", true) {
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return env.GetEnvString("VERSION", "dev")
}

// setupServer wires repositories, services, routes, and middleware into
// the root handler.
func setupServer(database *sql.DB, secCfg *config.SecurityConfig, version string, logger *slog.Logger) http.Handler {
	tokens := authUC.NewTokenIssuer(secCfg.JWTSecret, secCfg.TokenTTL)
	authSvc := &authUC.Service{
		Repo:   pgRepo.NewAdminRepo(database),
		Tokens: tokens,
		Cost:   secCfg.BcryptCost,
	}
	newsSvc := &newsUC.Service{Repo: pgRepo.NewNewsRepo(database)}

	authz := hauth.Authz(tokens)

	mux := http.NewServeMux()
	hauth.Register(mux, authSvc, authz)
	hnews.Register(mux, newsSvc, authz)

	// 運用エンドポイント（認証不要）
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the shared middleware chain.
// Order, outermost first: request ID, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server plus the metrics refresher and blocks
// until a termination signal triggers graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, database *sql.DB, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + env.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		refreshInventory(gctx, pgRepo.NewStatsRepo(database), database, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// refreshInventory periodically publishes content and pool gauges until
// the context is cancelled.
func refreshInventory(ctx context.Context, stats *pgRepo.StatsRepo, database *sql.DB, logger *slog.Logger) {
	ticker := time.NewTicker(inventoryRefreshInterval)
	defer ticker.Stop()

	for {
		start := time.Now()
		inv, err := stats.Inventory(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("inventory refresh failed", slog.Any("error", err))
		} else {
			metrics.RecordOperationDuration("inventory", time.Since(start))
			metrics.UpdateInventory(inv.ActiveNews, inv.DeletedNews, inv.ActiveAdmins)
		}
		metrics.UpdateDBPoolStats(database.Stats())

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
