package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/photobill/internal/appdata"
	"github.com/mmynk/photobill/internal/auth"
	"github.com/mmynk/photobill/internal/config"
	"github.com/mmynk/photobill/internal/detect"
	"github.com/mmynk/photobill/internal/httpapi"
	"github.com/mmynk/photobill/internal/middleware"
	"github.com/mmynk/photobill/internal/seed"
	"github.com/mmynk/photobill/internal/service"
	"github.com/mmynk/photobill/internal/storage"
	"github.com/mmynk/photobill/internal/storage/memory"
	"github.com/mmynk/photobill/internal/storage/postgres"
	"github.com/mmynk/photobill/internal/storage/sqlite"
	"github.com/mmynk/photobill/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.Logger.Level, cfg.Logger.Format)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer kv.Close()
	logger.Info("Storage initialized", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key)

	gateway := storage.NewGateway(kv, cfg.Storage.Key, seed.Default, logger)
	store := appdata.New(gateway, appdata.WithLogger(logger))
	go store.Load(ctx)

	var detector detect.Detector = detect.NewUnseeded()
	if cfg.DetectSeed != nil {
		detector = detect.NewRandom(*cfg.DetectSeed, *cfg.DetectSeed)
	}

	var (
		jwtManager   *auth.JWTManager
		interceptors []connect.Interceptor
		mounts       []httpapi.Mount
	)
	if cfg.Auth.Enabled() {
		authenticator, err := auth.NewPasscodeAuthenticator(cfg.Auth.OwnerPasscode)
		if err != nil {
			return fmt.Errorf("owner passcode: %w", err)
		}
		jwtManager = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		authPath, authHandler := service.NewAuthServiceHandler(
			service.NewAuthService(authenticator, jwtManager, logger),
			connect.WithInterceptors(middleware.LoggingInterceptor(logger)),
		)
		mounts = append(mounts, httpapi.Mount{Path: authPath, Handler: authHandler})
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
		logger.Info("Owner authentication enabled", "token_ttl", cfg.Auth.TokenTTL)
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor(logger))

	billingPath, billingHandler := service.NewBillingServiceHandler(
		service.NewBillingService(store, detector, cfg.Expenses, logger),
		connect.WithInterceptors(interceptors...),
	)
	mounts = append(mounts, httpapi.Mount{Path: billingPath, Handler: billingHandler})

	router := httpapi.NewRouter(httpapi.NewHandler(store, cfg.Expenses, logger), httpapi.Options{
		JWT:    jwtManager,
		Logger: logger,
		Mounts: mounts,
	})

	// h2c serves HTTP/2 without TLS, which Connect's gRPC protocol needs.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	// Drain the last snapshot before the storage handle closes.
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("Final snapshot write did not complete", "error", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURL)
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return sqlite.New(cfg.DBPath)
	}
}
