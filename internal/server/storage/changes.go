package storage

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

// ChangeStorage defines interface for the server-side change feed.
// Фид append-only: каждая принятая запись сохраняется навсегда
// (до явной очистки retention sweep) и раздается другим устройствам.
type ChangeStorage interface {
	// SaveChange сохраняет запись изменения от устройства.
	// Идемпотентна по ключу (device_id, table_name, record_id, seq):
	// повторная доставка того же изменения возвращает (false, nil).
	// Returns true if the change was newly stored, false for a duplicate.
	SaveChange(ctx context.Context, record *models.ChangeRecord) (bool, error)

	// GetChangesSince возвращает изменения новее since от всех устройств,
	// кроме excludeDeviceID (устройство не должно получать собственное эхо).
	// Порядок: по времени мутации, затем по seq источника.
	// Returns empty slice if no changes found.
	GetChangesSince(ctx context.Context, excludeDeviceID string, since time.Time) ([]*models.ChangeRecord, error)

	// DeleteChangesOlderThan удаляет записи старше cutoff (retention sweep).
	// Returns the number of deleted changes.
	DeleteChangesOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
