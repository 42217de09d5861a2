package storage

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

// DeviceStorage defines interface for the device registry.
// Устройства никогда не удаляются физически: только мягкая
// деактивация, чтобы история изменений оставалась атрибутируемой.
type DeviceStorage interface {
	// CreateDevice регистрирует новое устройство.
	// Returns ErrDeviceAlreadyExists if device_id is already registered.
	CreateDevice(ctx context.Context, device *models.DeviceInfo) error

	// GetDevice возвращает устройство по идентификатору.
	// Returns ErrDeviceNotFound if device doesn't exist.
	GetDevice(ctx context.Context, deviceID string) (*models.DeviceInfo, error)

	// ListDevices возвращает все известные устройства, включая неактивные
	ListDevices(ctx context.Context) ([]*models.DeviceInfo, error)

	// TouchDevice обновляет время последней успешной синхронизации.
	// Returns ErrDeviceNotFound if device doesn't exist.
	TouchDevice(ctx context.Context, deviceID string, lastSyncAt time.Time) error

	// DeactivateDevice помечает устройство неактивным (soft delete).
	// Returns ErrDeviceNotFound if device doesn't exist.
	DeactivateDevice(ctx context.Context, deviceID string) error
}
