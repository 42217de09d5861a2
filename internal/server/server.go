// Package server собирает sync-сервер: хранилище, обработчики,
// middleware и websocket хаб уведомлений.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/habitsync/internal/crypto"
	"github.com/iudanet/habitsync/internal/server/handlers"
	"github.com/iudanet/habitsync/internal/server/middleware"
	"github.com/iudanet/habitsync/internal/server/notify"
	"github.com/iudanet/habitsync/internal/server/storage/sqlite"
)

const (
	// shutdownTimeout время на graceful shutdown HTTP сервера
	shutdownTimeout = 10 * time.Second

	// readHeaderTimeout защита от slowloris
	readHeaderTimeout = 5 * time.Second
)

// Config конфигурация sync-сервера
type Config struct {
	Addr          string        // адрес прослушивания, например ":8080"
	DBPath        string        // путь к файлу SQLite
	JWTSecret     string        // секрет подписи токенов устройств
	PairingSecret string        // pairing secret установки
	TokenTTL      time.Duration // срок действия токена устройства
	Retention     time.Duration // срок хранения фида изменений, 0 = бессрочно
	SweepInterval time.Duration // период retention sweep
}

// Server представляет sync-сервер
type Server struct {
	logger     *slog.Logger
	storage    *sqlite.Storage
	hub        *notify.Hub
	httpServer *http.Server
	retention  time.Duration
	sweepEvery time.Duration
}

// New создает сервер: открывает хранилище и собирает маршруты
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.PairingSecret == "" {
		return nil, fmt.Errorf("pairing secret is required")
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	pairingHash, err := crypto.HashPairingSecret(cfg.PairingSecret)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to hash pairing secret: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL,
	}

	hub := notify.NewHub(logger)

	healthHandler := handlers.NewHealthHandler(logger)
	devicesHandler := handlers.NewDevicesHandler(logger, store, jwtConfig, pairingHash)
	syncHandler := handlers.NewSyncHandler(logger, store, store, hub)

	auth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/devices/register", devicesHandler.Register)
	mux.Handle("GET /api/v1/devices", auth(http.HandlerFunc(devicesHandler.List)))
	mux.Handle("POST /api/v1/sync/push", auth(http.HandlerFunc(syncHandler.Push)))
	mux.Handle("GET /api/v1/sync/changes", auth(http.HandlerFunc(syncHandler.Changes)))
	mux.Handle("GET /api/v1/notify", auth(http.HandlerFunc(hub.Handler)))

	// Middleware chain: recovery снаружи, логирование внутри.
	// Health не логируем: discovery клиентов опрашивает его при каждом
	// сканировании подсети.
	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(mux),
	)

	return &Server{
		logger:  logger,
		storage: store,
		hub:     hub,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		retention:  cfg.Retention,
		sweepEvery: cfg.SweepInterval,
	}, nil
}

// Run запускает сервер и блокируется до отмены контекста.
// Завершение graceful: активные запросы получают shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Retention sweep фида изменений
	sweepDone := make(chan struct{})
	go s.runSweep(ctx, sweepDone)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hub.Close()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	<-sweepDone

	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	return nil
}

// runSweep периодически удаляет записи фида старше retention.
// При нулевом retention фид хранится бессрочно.
func (s *Server) runSweep(ctx context.Context, done chan struct{}) {
	defer close(done)

	if s.retention <= 0 || s.sweepEvery <= 0 {
		return
	}

	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().UTC().Add(-s.retention)
			deleted, err := s.storage.DeleteChangesOlderThan(ctx, cutoff)
			if err != nil {
				s.logger.Error("retention sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				s.logger.Info("retention sweep completed",
					"deleted", deleted,
					"cutoff", cutoff)
			}
		}
	}
}
