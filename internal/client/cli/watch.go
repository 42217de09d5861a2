package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/pkg/api"
)

// runWatch печатает события канала уведомлений до прерывания.
// Поток best-effort: обрыв соединения завершает команду.
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching for changes from other devices (Ctrl+C to stop)...")
	c.io.Println()

	err := c.notifier.Subscribe(ctx, func(event api.Event) {
		c.printEvent(event)
	})
	if err != nil {
		return fmt.Errorf("notification channel failed: %w", err)
	}
	return nil
}

// printEvent печатает событие в человекочитаемом виде
func (c *Cli) printEvent(event api.Event) {
	now := time.Now().Format("15:04:05")

	switch event.Name {
	case api.EventDataChanged:
		var payload api.DataChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			break
		}
		c.io.Printf("[%s] %s %s/%s on device %s\n",
			now, payload.Operation, payload.TableName, payload.RecordID, shortID(payload.DeviceID))
		return

	case api.EventSyncStatusChanged:
		var payload api.SyncStatusChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			break
		}
		c.io.Printf("[%s] device %s: %s (%d pending)\n",
			now, shortID(payload.DeviceID), payload.Status, payload.PendingCount)
		return

	case api.EventSyncRequested:
		var payload api.SyncRequestedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			break
		}
		c.io.Printf("[%s] device %s pushed new changes\n",
			now, shortID(payload.RequestingDeviceID))
		return
	}

	c.io.Printf("[%s] %s\n", now, event.Name)
}

// shortID сокращает UUID устройства для вывода
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
