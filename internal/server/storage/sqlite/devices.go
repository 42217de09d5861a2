package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/server/storage"
)

// CreateDevice регистрирует новое устройство.
// Returns ErrDeviceAlreadyExists if device_id is already registered.
func (s *Storage) CreateDevice(ctx context.Context, device *models.DeviceInfo) error {
	query := `
		INSERT INTO devices (
			device_id, name, platform, secret_hash,
			active, last_sync_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, query,
		device.DeviceID,
		device.Name,
		device.Platform,
		device.SecretHash,
		boolToInt(device.Active),
		timeToUnix(device.LastSyncAt),
		now.Unix(),
		now.Unix(),
	)

	if err != nil {
		// Проверяем на duplicate device_id
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrDeviceAlreadyExists
		}
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

// GetDevice возвращает устройство по идентификатору.
// Returns ErrDeviceNotFound if device doesn't exist.
func (s *Storage) GetDevice(ctx context.Context, deviceID string) (*models.DeviceInfo, error) {
	query := `
		SELECT device_id, name, platform, secret_hash,
		       active, last_sync_at, created_at, updated_at
		FROM devices
		WHERE device_id = ?
	`

	device, err := scanDevice(s.db.QueryRowContext(ctx, query, deviceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return device, nil
}

// ListDevices возвращает все известные устройства, включая неактивные
func (s *Storage) ListDevices(ctx context.Context) ([]*models.DeviceInfo, error) {
	query := `
		SELECT device_id, name, platform, secret_hash,
		       active, last_sync_at, created_at, updated_at
		FROM devices
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var devices []*models.DeviceInfo

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

// TouchDevice обновляет время последней успешной синхронизации.
// Returns ErrDeviceNotFound if device doesn't exist.
func (s *Storage) TouchDevice(ctx context.Context, deviceID string, lastSyncAt time.Time) error {
	query := `
		UPDATE devices
		SET last_sync_at = ?, updated_at = ?
		WHERE device_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		timeToUnix(lastSyncAt),
		time.Now().UTC().Unix(),
		deviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice помечает устройство неактивным (soft delete).
// Returns ErrDeviceNotFound if device doesn't exist.
func (s *Storage) DeactivateDevice(ctx context.Context, deviceID string) error {
	query := `
		UPDATE devices
		SET active = 0, updated_at = ?
		WHERE device_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, time.Now().UTC().Unix(), deviceID)
	if err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDeviceNotFound
	}

	return nil
}

// scanner абстрагирует *sql.Row и *sql.Rows для scanDevice
type scanner interface {
	Scan(dest ...any) error
}

// scanDevice читает строку устройства
func scanDevice(row scanner) (*models.DeviceInfo, error) {
	device := &models.DeviceInfo{}
	var active int
	var lastSyncAt, createdAt, updatedAt int64

	err := row.Scan(
		&device.DeviceID,
		&device.Name,
		&device.Platform,
		&device.SecretHash,
		&active,
		&lastSyncAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	device.Active = intToBool(active)
	device.LastSyncAt = unixToTime(lastSyncAt)
	device.CreatedAt = unixToTime(createdAt)
	device.UpdatedAt = unixToTime(updatedAt)

	return device, nil
}

// Helper functions for bool/int and time conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func unixToTime(timestamp int64) time.Time {
	if timestamp == 0 {
		return time.Time{}
	}
	return time.Unix(timestamp, 0).UTC()
}
