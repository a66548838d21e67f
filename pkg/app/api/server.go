// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/social-wallet-api/pkg/app/http"
	"github.com/chainsafe/social-wallet-api/pkg/auth"
	"github.com/chainsafe/social-wallet-api/pkg/config"
	"github.com/chainsafe/social-wallet-api/pkg/downstream"
	"github.com/chainsafe/social-wallet-api/pkg/identity"
	"github.com/chainsafe/social-wallet-api/pkg/pgutil"
	profileservice "github.com/chainsafe/social-wallet-api/pkg/profile/service"
	"github.com/chainsafe/social-wallet-api/pkg/tasks"
	userservice "github.com/chainsafe/social-wallet-api/pkg/user/service"
	"github.com/chainsafe/social-wallet-api/pkg/userstore"
	walletlinkservice "github.com/chainsafe/social-wallet-api/pkg/walletlink/service"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services are the decorated domain services mounted under /users
type services struct {
	registration userservice.Service
	walletLink   walletlinkservice.Service
	profile      profileservice.Service
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run connects the database, starts the task dispatcher and serves the API.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() (err error) {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting social wallet API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	store := userstore.NewStore(db)
	oracle := identity.NewClient(&cfg.Identity)
	triggers := downstream.NewClient(&cfg.Downstream, logger)

	validator := auth.NewJWTValidator(cfg.Auth.JWKSURL, cfg.Auth.Issuer, cfg.Auth.Audience)
	if !validator.IsConfigured() {
		logger.Warn("JWKS URL not configured, trusting the " + auth.HeaderIdentityID + " header")
	}

	dispatcher := tasks.NewDispatcher(&cfg.Tasks, logger)
	dispatcher.Start()
	// Stop is idempotent; the deferred call covers early returns.
	defer dispatcher.Stop()

	svcs := &services{
		registration: userservice.NewLog(
			userservice.NewService(store, oracle, cfg.Identity.EmbeddedWalletClientType, logger),
			logger,
		),
		walletLink: walletlinkservice.NewLog(
			walletlinkservice.NewService(store, auth.EIP191Verifier{}, dispatcher, triggers, logger),
			logger,
		),
		profile: profileservice.NewLog(
			profileservice.NewService(store, dispatcher, triggers, cfg.Profile.PageSize, logger),
			logger,
		),
	}

	router := newRouter(cfg, svcs, validator, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	dispatcher.Stop()

	return err
}

func newRouter(
	cfg *config.APIServerConfig,
	svcs *services,
	validator auth.SubjectValidator,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.Recoverer(logger))
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.IdentityMiddleware(validator, logger))

		userservice.RegisterRoutes(r, svcs.registration, logger)
		walletlinkservice.RegisterRoutes(r, svcs.walletLink, logger)
		profileservice.RegisterRoutes(r, svcs.profile, logger)
	})

	return r
}
