package cli

import (
	"context"
	"fmt"
	"time"
)

// runStatus показывает состояние синхронизации устройства
func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	c.io.Printf("Device ID: %s\n", c.deviceID)

	token, err := c.metadata.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to check registration: %w", err)
	}
	if token == "" {
		c.io.Println("Status: Not registered")
		c.io.Println()
		c.io.Println("Run 'habitsync register' to join a sync group.")
		return nil
	}
	c.io.Println("Status: Registered")

	if addr, err := c.metadata.GetLastServerAddr(ctx); err == nil && addr != "" {
		c.io.Printf("Last server: %s\n", addr)
	}

	watermark, err := c.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync timestamp: %w", err)
	}
	if watermark.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s (%s ago)\n",
			watermark.Local().Format(time.RFC822),
			time.Since(watermark).Round(time.Second))
	}

	pendingCount, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d record(s) waiting to be synchronized\n", pendingCount)
		c.io.Println("Run 'habitsync sync' to synchronize.")
	} else {
		c.io.Println("✓ All changes synchronized")
	}

	return nil
}
