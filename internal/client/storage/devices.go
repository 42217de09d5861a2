package storage

import (
	"context"

	"github.com/iudanet/habitsync/internal/models"
)

//go:generate moq -out devices_mock.go . DeviceStorage

// DeviceStorage defines interface for the local cache of known devices
type DeviceStorage interface {
	// SaveDevice создает или обновляет запись устройства
	SaveDevice(ctx context.Context, device *models.DeviceInfo) error

	// GetDevice возвращает устройство по id.
	// Returns ErrDeviceNotFound if device doesn't exist.
	GetDevice(ctx context.Context, deviceID string) (*models.DeviceInfo, error)

	// ListDevices возвращает все известные устройства, включая неактивные
	ListDevices(ctx context.Context) ([]*models.DeviceInfo, error)

	// DeactivateDevice мягко деактивирует устройство (Active=false).
	// Записи устройств никогда не удаляются физически.
	DeactivateDevice(ctx context.Context, deviceID string) error
}
