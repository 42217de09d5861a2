package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata:
// watermark, идентичность устройства, последний рабочий адрес сервера.
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the watermark of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, ts time.Time) error

	// GetLastSyncTimestamp retrieves the watermark.
	// Returns zero time if no sync has been performed yet.
	GetLastSyncTimestamp(ctx context.Context) (time.Time, error)

	// SaveLastServerAddr запоминает последний успешно отвечавший адрес
	// сервера (пробуется первым при следующем discovery)
	SaveLastServerAddr(ctx context.Context, addr string) error

	// GetLastServerAddr возвращает последний рабочий адрес сервера
	// или пустую строку, если его нет
	GetLastServerAddr(ctx context.Context) (string, error)

	// SaveDeviceID сохраняет идентификатор этого устройства
	SaveDeviceID(ctx context.Context, deviceID string) error

	// GetDeviceID возвращает идентификатор этого устройства
	// или пустую строку до первой инициализации
	GetDeviceID(ctx context.Context) (string, error)

	// SaveAccessToken сохраняет токен доступа к серверу
	SaveAccessToken(ctx context.Context, token string) error

	// GetAccessToken возвращает сохраненный токен доступа
	// или пустую строку, если устройство не зарегистрировано
	GetAccessToken(ctx context.Context) (string, error)
}
