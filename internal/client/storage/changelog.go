package storage

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

//go:generate moq -out changelog_mock.go . ChangeLog

// ChangeLog defines interface for the append-only change log on client.
// Записи иммутабельны после Append, меняется только флаг Synced.
type ChangeLog interface {
	// Append добавляет запись изменения: присваивает свежий локальный id
	// и текущее UTC время, Synced=false
	Append(
		ctx context.Context,
		tableName, recordID string,
		op models.Operation,
		payload []byte,
		deviceID string,
	) (*models.ChangeRecord, error)

	// PendingSince возвращает несинхронизированные записи в порядке
	// локального id (insertion order). При ненулевом since дополнительно
	// фильтрует по Timestamp > since. Каждый вызов пересчитывает
	// результат от текущего состояния.
	PendingSince(ctx context.Context, since time.Time) ([]*models.ChangeRecord, error)

	// MarkSynced помечает записи как синхронизированные и обновляет
	// общий снимок payload-ом каждой помеченной записи: принятая
	// сервером запись известна обеим сторонам.
	// Идемпотентна; неизвестные id молча игнорируются.
	MarkSynced(ctx context.Context, ids []int64) error

	// MarkSuperseded выводит записи из push-очереди, не трогая общий
	// снимок. Для записей, проигравших разрешение конфликта: снимком
	// уже стал payload победителя, проигравший payload не должен его
	// затирать. Идемпотентна, как MarkSynced.
	MarkSuperseded(ctx context.Context, ids []int64) error

	// LastSyncedPayload возвращает payload последней синхронизированной
	// записи для (table, record) — "последний общий снимок" для field merge.
	// Возвращает ErrChangeNotFound, если общего снимка нет.
	LastSyncedPayload(ctx context.Context, tableName, recordID string) ([]byte, error)

	// SaveCommonSnapshot фиксирует общий снимок для (table, record).
	// Вызывается оркестратором после применения удаленного изменения:
	// примененное изменение известно обеим сторонам. nil payload
	// удаляет снимок (запись удалена на обеих сторонах).
	SaveCommonSnapshot(ctx context.Context, tableName, recordID string, payload []byte) error

	// PurgeOlderThan удаляет синхронизированные записи старше retention.
	// Несинхронизированные записи не удаляются независимо от возраста.
	// Возвращает количество удаленных записей.
	PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error)
}
