package cli

import (
	"context"
	"fmt"
	"time"
)

// runPurge удаляет синхронизированные записи журнала старше retention.
// Несинхронизированные записи не трогаются независимо от возраста.
func (c *Cli) runPurge(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: habitsync purge RETENTION (e.g. 720h)")
	}

	retention, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid retention duration: %w", err)
	}
	if retention <= 0 {
		return fmt.Errorf("retention must be positive")
	}

	purged, err := c.changelog.PurgeOlderThan(ctx, retention)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	c.io.Printf("✓ Purged %d synced log entries older than %s\n", purged, retention)
	return nil
}
