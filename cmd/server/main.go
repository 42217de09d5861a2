package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iudanet/habitsync/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "habitsync-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "Secret for signing device tokens (required, or HABITSYNC_JWT_SECRET)")
	pairingSecret := flag.String("pairing-secret", "", "Pairing secret for device registration (required, or HABITSYNC_PAIRING_SECRET)")
	tokenTTL := flag.Duration("token-ttl", 720*time.Hour, "Device access token lifetime")
	retention := flag.Duration("retention", 0, "Change feed retention, 0 keeps changes forever")
	sweepInterval := flag.Duration("sweep-interval", time.Hour, "Retention sweep period")
	logFile := flag.String("log-file", "", "Log file path with rotation (default: stderr)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger(*logFile, *logLevel)

	// Секреты из окружения имеют приоритет над флагами
	cfg := server.Config{
		Addr:          *addr,
		DBPath:        *dbPath,
		JWTSecret:     envOr("HABITSYNC_JWT_SECRET", *jwtSecret),
		PairingSecret: envOr("HABITSYNC_PAIRING_SECRET", *pairingSecret),
		TokenTTL:      *tokenTTL,
		Retention:     *retention,
		SweepInterval: *sweepInterval,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	logger.Info("HabitSync server starting",
		"version", Version,
		"addr", cfg.Addr,
		"db", cfg.DBPath)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newLogger создает slog логгер; при заданном файле пишет туда
// с ротацией
func newLogger(logFile, level string) *slog.Logger {
	var output io.Writer = os.Stderr
	if logFile != "" {
		output = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// parseLogLevel конвертирует строку в slog уровень
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envOr возвращает значение переменной окружения или fallback
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("HabitSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
