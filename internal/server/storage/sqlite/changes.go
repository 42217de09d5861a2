package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

// SaveChange сохраняет запись изменения в фид.
// Идемпотентна: повтор по ключу (device_id, table_name, record_id, seq)
// ловится уникальным индексом и возвращает (false, nil).
// Returns true if the change was newly stored, false for a duplicate.
func (s *Storage) SaveChange(ctx context.Context, record *models.ChangeRecord) (bool, error) {
	query := `
		INSERT INTO changes (
			device_id, table_name, record_id, seq,
			operation, payload, timestamp, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.DeviceID,
		record.TableName,
		record.RecordID,
		record.ID,
		string(record.Operation),
		record.Payload,
		record.Timestamp.UTC().UnixNano(),
		time.Now().UTC().UnixNano(),
	)

	if err != nil {
		// Повторная доставка того же изменения
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert change: %w", err)
	}

	return true, nil
}

// GetChangesSince возвращает изменения новее since от всех устройств,
// кроме excludeDeviceID. Timestamp хранится в наносекундах, поэтому
// сравнение строго больше не теряет записи на границе.
// Returns empty slice if no changes found.
func (s *Storage) GetChangesSince(ctx context.Context, excludeDeviceID string, since time.Time) ([]*models.ChangeRecord, error) {
	query := `
		SELECT device_id, table_name, record_id, seq,
		       operation, payload, timestamp
		FROM changes
		WHERE device_id != ? AND timestamp > ?
		ORDER BY timestamp ASC, seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query, excludeDeviceID, since.UTC().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query changes since timestamp: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var changes []*models.ChangeRecord

	for rows.Next() {
		record := &models.ChangeRecord{}
		var operation string
		var timestamp int64

		err := rows.Scan(
			&record.DeviceID,
			&record.TableName,
			&record.RecordID,
			&record.ID,
			&operation,
			&record.Payload,
			&timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change: %w", err)
		}

		record.Operation = models.Operation(operation)
		record.Timestamp = time.Unix(0, timestamp).UTC()
		record.Synced = true

		changes = append(changes, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return changes, nil
}

// DeleteChangesOlderThan удаляет записи фида старше cutoff.
// Используется retention sweep; устройства, отстающие дольше периода
// хранения, при следующем контакте получают неполный фид.
// Returns the number of deleted changes.
func (s *Storage) DeleteChangesOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM changes WHERE timestamp < ?`

	result, err := s.db.ExecContext(ctx, query, cutoff.UTC().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old changes: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
