package models

import "time"

// SyncStatus статус синхронизации для событий SyncStatusChanged
type SyncStatus string

// Статусы синхронизации
const (
	StatusSyncing   SyncStatus = "syncing"
	StatusCompleted SyncStatus = "completed"
	StatusFailed    SyncStatus = "failed"
	StatusOffline   SyncStatus = "offline"
)

// ErrorKind классифицирует ошибки цикла синхронизации
type ErrorKind string

// Виды ошибок. ConflictEscalated ошибкой не является: отложенное
// решение пользователя попадает в SyncResult.Conflicts.
const (
	// KindStorageUnavailable локальное хранилище недоступно — фатально
	// для текущего цикла, повтор на следующем тике
	KindStorageUnavailable ErrorKind = "storage_unavailable"

	// KindServerUnreachable таймаут discovery/transport — трактуется
	// как offline, не как ошибка вызова
	KindServerUnreachable ErrorKind = "server_unreachable"

	// KindUnmergeablePayload payload не является плоской map —
	// стратегия merge деградирует до LastWriterWins
	KindUnmergeablePayload ErrorKind = "unmergeable_payload"

	// KindEntityNotFound удаленная сторона ссылается на локально
	// удаленную запись — no-op delete-delete конфликт
	KindEntityNotFound ErrorKind = "entity_not_found"
)

// SyncError одна ошибка цикла с опциональным контекстом записи
type SyncError struct {
	Err       error     `json:"-"`
	Kind      ErrorKind `json:"kind"`
	TableName string    `json:"table_name,omitempty"`
	RecordID  string    `json:"record_id,omitempty"`
}

// Error реализует error
func (e *SyncError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

// Unwrap возвращает причину
func (e *SyncError) Unwrap() error { return e.Err }

// SyncResult итог одного цикла синхронизации.
// Конструируется заново на каждый цикл и возвращается вызывающему;
// персистентно сохраняется только watermark (lastSyncTimestamp).
type SyncResult struct {
	CompletedAt   time.Time   `json:"completed_at"`
	Message       string      `json:"message"`
	Conflicts     []ChangeKey `json:"conflicts,omitempty"` // неразрешенные (эскалированные) конфликты
	Errors        []SyncError `json:"errors,omitempty"`
	SyncedRecords int         `json:"synced_records"`
	Success       bool        `json:"success"`
}

// AddError добавляет ошибку цикла
func (r *SyncResult) AddError(kind ErrorKind, table, recordID string, err error) {
	r.Errors = append(r.Errors, SyncError{
		Kind:      kind,
		TableName: table,
		RecordID:  recordID,
		Err:       err,
	})
}
