package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/habitsync/internal/models"
)

// runSync выполняет один цикл синхронизации
func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Synchronize(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Success {
		c.io.Println("✓ Synchronization completed successfully!")
	} else {
		c.io.Printf("Synchronization finished: %s\n", result.Message)
	}
	c.io.Println()
	c.io.Printf("Synced records: %d\n", result.SyncedRecords)

	if len(result.Conflicts) > 0 {
		c.io.Println()
		c.io.Printf("⚠️  Unresolved conflicts: %d\n", len(result.Conflicts))
		for _, key := range result.Conflicts {
			c.io.Printf("  %s/%s\n", key.TableName, key.RecordID)
		}
		c.io.Println()
		c.io.Println("Resolve them with 'habitsync resolve TABLE ID'.")
	}

	if len(result.Errors) > 0 {
		c.io.Println()
		c.io.Printf("Errors: %d\n", len(result.Errors))
		for _, syncErr := range result.Errors {
			c.io.Printf("  %v\n", syncErr)
		}
	}

	return nil
}

// runResolve явно разрешает эскалированный конфликт.
// Пользователь вводит итоговое состояние сущности как JSON.
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: habitsync resolve TABLE RECORD_ID")
	}

	key := models.ChangeKey{TableName: args[0], RecordID: args[1]}

	c.io.Printf("Resolving conflict for %s/%s\n", key.TableName, key.RecordID)
	input, err := c.io.ReadInput("Final state (JSON): ")
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	if !json.Valid([]byte(input)) {
		return fmt.Errorf("payload must be valid JSON")
	}

	if err := c.syncService.ResolveManual(ctx, key, []byte(input)); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Println("✓ Conflict resolved. Run 'habitsync sync' to push the chosen state.")
	return nil
}
