package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// AutoSync периодически запускает циклы синхронизации.
// Каждый тик идет через тот же single-flight путь, что и ручной
// запуск. Остановка наблюдается только между тиками: уже начатый
// цикл никогда не прерывается.
type AutoSync struct {
	service  Service
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
	interval time.Duration
	mu       sync.Mutex
}

// NewAutoSync creates a background auto-sync scheduler
func NewAutoSync(service Service, interval time.Duration, logger *slog.Logger) *AutoSync {
	return &AutoSync{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает фоновый цикл. Возвращает ошибку, если цикл уже
// запущен или интервал некорректен.
func (a *AutoSync) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.interval <= 0 {
		return fmt.Errorf("sync interval must be positive")
	}
	if a.stop != nil {
		return fmt.Errorf("auto sync is already running")
	}

	a.stop = make(chan struct{})
	a.done = make(chan struct{})

	go a.run(ctx, a.stop, a.done)

	a.logger.Info("auto sync started", "interval", a.interval)
	return nil
}

// Stop останавливает фоновый цикл и дожидается завершения текущего
// тика. Возвращает ошибку, если цикл не запущен.
func (a *AutoSync) Stop() error {
	a.mu.Lock()
	if a.stop == nil {
		a.mu.Unlock()
		return fmt.Errorf("auto sync is not running")
	}

	close(a.stop)
	done := a.done
	a.stop = nil
	a.done = nil
	a.mu.Unlock()

	<-done
	a.logger.Info("auto sync stopped")
	return nil
}

// run кооперативный цикл планировщика: тик → один цикл синхронизации.
// Отмена проверяется между тиками, Synchronize выполняется синхронно
// и потому никогда не обрывается посередине.
func (a *AutoSync) run(ctx context.Context, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			result, err := a.service.Synchronize(ctx)
			if err != nil {
				a.logger.Error("background sync failed", "error", err)
				continue
			}
			a.logger.Debug("background sync tick",
				"success", result.Success,
				"message", result.Message,
				"synced", result.SyncedRecords)
		}
	}
}
