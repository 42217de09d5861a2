package api

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс транспорта синхронизации.
// Обе операции идемпотентны на уровне записи: сервер ключует принятые
// записи по (device_id, table_name, record_id, seq), поэтому повтор
// частично неудавшегося push безопасен.
type ClientAPI interface {
	// Push отправляет локальные записи; сервер возвращает per-record acks
	Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error)

	// Pull возвращает изменения сервера новее watermark
	// (без собственных записей запрашивающего устройства)
	Pull(ctx context.Context, since time.Time) (*api.PullResponse, error)

	// SetBaseURL переключает транспорт на адрес, найденный discovery
	SetBaseURL(baseURL string)
}
