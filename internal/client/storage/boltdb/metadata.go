package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
)

// Ключи внутри bucket metadata
const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyLastServerAddr    = "last_server_addr"
	keyDeviceID          = "device_id"
	keyAccessToken       = "access_token"
)

// SaveLastSyncTimestamp saves the watermark of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error {
	// Храним в RFC3339Nano: человекочитаемо и сохраняет порядок
	return s.putMeta(keyLastSyncTimestamp, []byte(ts.UTC().Format(time.RFC3339Nano)))
}

// GetLastSyncTimestamp retrieves the watermark.
// Returns zero time if no sync has been performed yet.
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	data, err := s.getMeta(keyLastSyncTimestamp)
	if err != nil {
		return time.Time{}, err
	}
	if data == nil {
		// Синхронизации еще не было
		return time.Time{}, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last sync timestamp: %w", err)
	}

	return ts, nil
}

// SaveLastServerAddr запоминает последний успешно отвечавший адрес сервера
func (s *Storage) SaveLastServerAddr(ctx context.Context, addr string) error {
	return s.putMeta(keyLastServerAddr, []byte(addr))
}

// GetLastServerAddr возвращает последний рабочий адрес сервера
func (s *Storage) GetLastServerAddr(ctx context.Context) (string, error) {
	data, err := s.getMeta(keyLastServerAddr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveDeviceID сохраняет идентификатор этого устройства
func (s *Storage) SaveDeviceID(ctx context.Context, deviceID string) error {
	return s.putMeta(keyDeviceID, []byte(deviceID))
}

// GetDeviceID возвращает идентификатор этого устройства
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	data, err := s.getMeta(keyDeviceID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveAccessToken сохраняет токен доступа к серверу
func (s *Storage) SaveAccessToken(ctx context.Context, token string) error {
	return s.putMeta(keyAccessToken, []byte(token))
}

// GetAccessToken возвращает сохраненный токен доступа
func (s *Storage) GetAccessToken(ctx context.Context) (string, error) {
	data, err := s.getMeta(keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// putMeta записывает значение по ключу в bucket metadata
func (s *Storage) putMeta(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		return bucket.Put([]byte(key), value)
	})

	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// getMeta читает значение по ключу; nil если ключа нет
func (s *Storage) getMeta(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}
