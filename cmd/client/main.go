package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/cli"
	"github.com/iudanet/habitsync/internal/client/data"
	"github.com/iudanet/habitsync/internal/client/discovery"
	"github.com/iudanet/habitsync/internal/client/iocli"
	"github.com/iudanet/habitsync/internal/client/notify"
	"github.com/iudanet/habitsync/internal/client/resolve"
	"github.com/iudanet/habitsync/internal/client/storage/boltdb"
	"github.com/iudanet/habitsync/internal/client/syncer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (skips discovery)")
	dbPath := flag.String("db", "habitsync-client.db", "Path to local database")
	interval := flag.Duration("interval", 5*time.Minute, "Auto-sync interval for daemon mode")
	strategy := flag.String("strategy", "", "Conflict resolution strategy (last_writer_wins, prefer_local, prefer_server, merge_data, manual)")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	// Контекст отменяется по SIGINT/SIGTERM: важен для daemon и watch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Идентичность устройства создается один раз и переживает рестарты
	deviceID, err := ensureDeviceID(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize device identity: %v\n", err)
		os.Exit(1)
	}

	// Создаем API клиент; сохраненный токен подставляется сразу
	apiClient := api.NewClient(*serverURL)
	token, err := boltStorage.GetAccessToken(ctx)
	if err == nil && token != "" {
		apiClient.SetToken(token)
	}

	// Discovery: явный --server превращается в статический кандидат
	// и отключает сканирование подсети
	discoveryCfg := discovery.Config{}
	if *serverURL != "" {
		discoveryCfg.StaticAddrs = []string{*serverURL}
		discoveryCfg.DisableSubnetScan = true
	}
	discoverySvc := discovery.New(discoveryCfg, boltStorage, logger)

	// Канал уведомлений подключается к последнему известному адресу
	serverAddr := *serverURL
	if serverAddr == "" {
		if addr, addrErr := boltStorage.GetLastServerAddr(ctx); addrErr == nil {
			serverAddr = addr
		}
	}
	notifier := notify.NewWSChannel(serverAddr, token, logger)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Debug("failed to close notification channel", "error", err)
		}
	}()

	resolveStrategy, err := resolve.ParseStrategy(*strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid conflict strategy: %v\n", err)
		cli.PrintUsage()
		os.Exit(1)
	}
	resolver := resolve.New(resolveStrategy, logger)

	syncService := syncer.NewService(
		apiClient,
		discoverySvc,
		boltStorage,
		boltStorage,
		boltStorage,
		boltStorage,
		resolver,
		notifier,
		deviceID,
		logger,
	)

	dataService := data.NewService(boltStorage, boltStorage, deviceID)

	c := cli.New(
		iocli.NewStdio(),
		logger,
		apiClient,
		dataService,
		syncService,
		notifier,
		boltStorage,
		boltStorage,
		boltStorage,
		deviceID,
	)

	c.Run(ctx, command, args[1:], *interval)
}

// ensureDeviceID возвращает сохраненный идентификатор устройства
// или генерирует и сохраняет новый
func ensureDeviceID(ctx context.Context, boltStorage *boltdb.Storage) (string, error) {
	deviceID, err := boltStorage.GetDeviceID(ctx)
	if err != nil {
		return "", err
	}
	if deviceID != "" {
		return deviceID, nil
	}

	deviceID = uuid.New().String()
	if err := boltStorage.SaveDeviceID(ctx, deviceID); err != nil {
		return "", err
	}
	return deviceID, nil
}

// parseLogLevel конвертирует строку в slog уровень
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printVersion() {
	fmt.Printf("HabitSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
