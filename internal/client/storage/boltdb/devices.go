package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

// SaveDevice создает или обновляет запись устройства
func (s *Storage) SaveDevice(ctx context.Context, device *models.DeviceInfo) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)
		if bucket == nil {
			return storage.ErrStorageClosed
		}
		return bucket.Put([]byte(device.DeviceID), data)
	})

	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}
	return nil
}

// GetDevice возвращает устройство по id
func (s *Storage) GetDevice(ctx context.Context, deviceID string) (*models.DeviceInfo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var device *models.DeviceInfo

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)
		if bucket == nil {
			return storage.ErrDeviceNotFound
		}

		data := bucket.Get([]byte(deviceID))
		if data == nil {
			return storage.ErrDeviceNotFound
		}

		device = &models.DeviceInfo{}
		if err := json.Unmarshal(data, device); err != nil {
			return fmt.Errorf("failed to unmarshal device: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return device, nil
}

// ListDevices возвращает все известные устройства, включая неактивные
func (s *Storage) ListDevices(ctx context.Context) ([]*models.DeviceInfo, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var devices []*models.DeviceInfo

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var device models.DeviceInfo
			if err := json.Unmarshal(v, &device); err != nil {
				return fmt.Errorf("failed to unmarshal device: %w", err)
			}
			devices = append(devices, &device)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

// DeactivateDevice мягко деактивирует устройство (Active=false).
// Физически запись не удаляется.
func (s *Storage) DeactivateDevice(ctx context.Context, deviceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)
		if bucket == nil {
			return storage.ErrDeviceNotFound
		}

		data := bucket.Get([]byte(deviceID))
		if data == nil {
			return storage.ErrDeviceNotFound
		}

		var device models.DeviceInfo
		if err := json.Unmarshal(data, &device); err != nil {
			return fmt.Errorf("failed to unmarshal device: %w", err)
		}

		device.Active = false
		device.UpdatedAt = time.Now().UTC()

		updated, err := json.Marshal(&device)
		if err != nil {
			return fmt.Errorf("failed to marshal device: %w", err)
		}
		return bucket.Put([]byte(deviceID), updated)
	})

	if err != nil {
		return fmt.Errorf("failed to deactivate device: %w", err)
	}
	return nil
}
