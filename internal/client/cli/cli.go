// Package cli реализует команды клиента habitsync.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/data"
	"github.com/iudanet/habitsync/internal/client/iocli"
	"github.com/iudanet/habitsync/internal/client/notify"
	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/client/syncer"
)

// Cli связывает команды с сервисами клиента
type Cli struct {
	io          iocli.IO
	logger      *slog.Logger
	apiClient   *api.Client
	dataService *data.Service
	syncService syncer.Service
	notifier    notify.Channel
	metadata    storage.MetadataStorage
	changelog   storage.ChangeLog
	devices     storage.DeviceStorage
	deviceID    string
}

// New создает CLI с уже собранными сервисами
func New(
	io iocli.IO,
	logger *slog.Logger,
	apiClient *api.Client,
	dataService *data.Service,
	syncService syncer.Service,
	notifier notify.Channel,
	metadata storage.MetadataStorage,
	changelog storage.ChangeLog,
	devices storage.DeviceStorage,
	deviceID string,
) *Cli {
	return &Cli{
		io:          io,
		logger:      logger,
		apiClient:   apiClient,
		dataService: dataService,
		syncService: syncService,
		notifier:    notifier,
		metadata:    metadata,
		changelog:   changelog,
		devices:     devices,
		deviceID:    deviceID,
	}
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println(`HabitSync Client

Usage:
  habitsync [OPTIONS] COMMAND

Options:
  --version              Show version information
  --server URL           Server URL (skips discovery, e.g. http://192.168.1.10:8080)
  --db PATH              Path to local database (default: habitsync-client.db)
  --interval DURATION    Auto-sync interval for daemon mode (default: 5m)
  --log-level LEVEL      Log level: debug, info, warn, error (default: warn)

Pairing Secret Priority (highest to lowest):
  1. HABITSYNC_PAIRING_SECRET environment variable
  2. Interactive prompt

Commands:
  register [NAME]        Register this device on the sync server
  add NAME [SCHEDULE]    Add a new habit
  track HABIT [NOTE]     Record a habit completion
  list [HABIT]           List habits, or sessions of one habit
  delete HABIT           Delete a habit
  sync                   Run one synchronization cycle
  resolve TABLE ID       Resolve an escalated conflict manually
  status                 Show sync status and pending changes
  devices                List devices known to the server
  watch                  Stream change notifications from other devices
  purge RETENTION        Remove synced log entries older than RETENTION (e.g. 720h)
  daemon                 Run periodic background sync until interrupted

Examples:
  habitsync register laptop
  habitsync add "Morning Run" daily
  habitsync track "Morning Run"
  habitsync sync
  habitsync --server http://192.168.1.10:8080 sync
  habitsync purge 720h
  habitsync daemon`)
}
