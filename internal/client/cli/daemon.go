package cli

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/client/syncer"
	"github.com/iudanet/habitsync/pkg/api"
)

// runDaemon запускает фоновую синхронизацию: периодический тик плюс
// немедленный цикл по уведомлению от другого устройства. Работает
// до отмены контекста (SIGINT/SIGTERM в main).
func (c *Cli) runDaemon(ctx context.Context, interval time.Duration) error {
	c.io.Printf("Starting sync daemon (interval %s, Ctrl+C to stop)...\n", interval)

	autoSync := syncer.NewAutoSync(c.syncService, interval, c.logger)
	if err := autoSync.Start(ctx); err != nil {
		return err
	}

	// Уведомления ускоряют сходимость: чужой push запускает цикл
	// сразу, не дожидаясь тика. Single-flight guard в сервисе
	// схлопывает наложившиеся запуски.
	go c.watchForSyncTriggers(ctx)

	// Стартовый цикл: подтянуть накопившееся за время простоя
	if result, err := c.syncService.Synchronize(ctx); err != nil {
		c.logger.Error("initial sync failed", "error", err)
	} else {
		c.logger.Info("initial sync finished", "success", result.Success, "message", result.Message)
	}

	<-ctx.Done()

	return autoSync.Stop()
}

// watchForSyncTriggers переподключается к каналу уведомлений и
// запускает цикл на каждое событие от другого устройства
func (c *Cli) watchForSyncTriggers(ctx context.Context) {
	for {
		err := c.notifier.Subscribe(ctx, func(event api.Event) {
			if event.Name != api.EventSyncRequested && event.Name != api.EventDataChanged {
				return
			}

			if _, err := c.syncService.Synchronize(ctx); err != nil {
				c.logger.Error("triggered sync failed", "error", err)
			}
		})

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.logger.Debug("notification subscription lost", "error", err)
		}

		// Пауза перед переподключением
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Second):
		}
	}
}
