package models

import "time"

// Operation тип операции в записи изменения
type Operation string

// Допустимые операции
const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Valid проверяет, что операция известна
func (o Operation) Valid() bool {
	switch o {
	case OpInsert, OpUpdate, OpDelete:
		return true
	}
	return false
}

// ChangeRecord представляет одну залогированную мутацию локальных данных.
// Запись append-only: после добавления в журнал меняется только флаг Synced.
type ChangeRecord struct {
	Timestamp time.Time `json:"timestamp"`  // Timestamp UTC время мутации (только tie-break, не total order)
	TableName string    `json:"table_name"` // TableName логический тип сущности
	RecordID  string    `json:"record_id"`  // RecordID идентификатор сущности внутри таблицы
	DeviceID  string    `json:"device_id"`  // DeviceID устройство-источник
	Payload   []byte    `json:"payload"`    // Payload снимок состояния сущности (opaque JSON, пустой для delete)
	ID        int64     `json:"id"`         // ID локальный монотонный номер записи (bolt sequence)
	Operation Operation `json:"operation"`  // Operation insert/update/delete
	Synced    bool      `json:"synced"`     // Synced выставляется оркестратором после успешного round-trip
}

// Key возвращает ключ конфликта: пара (таблица, запись)
func (c *ChangeRecord) Key() ChangeKey {
	return ChangeKey{TableName: c.TableName, RecordID: c.RecordID}
}

// NewerThan сравнивает две записи по времени мутации.
// При равных timestamp запись НЕ считается новее: детерминированный
// tie-break (победа серверной копии) остается за резолвером конфликтов.
func (c *ChangeRecord) NewerThan(other *ChangeRecord) bool {
	return c.Timestamp.After(other.Timestamp)
}

// Clone создает глубокую копию записи
func (c *ChangeRecord) Clone() *ChangeRecord {
	payload := make([]byte, len(c.Payload))
	copy(payload, c.Payload)

	clone := *c
	clone.Payload = payload
	return &clone
}

// ChangeKey идентифицирует сущность, которой касается изменение
type ChangeKey struct {
	TableName string `json:"table_name"`
	RecordID  string `json:"record_id"`
}
