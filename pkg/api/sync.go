package api

import "time"

// Operation значения операций в записи изменения
const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// ChangeRecord представляет одну запись журнала изменений для синхронизации
type ChangeRecord struct {
	Timestamp time.Time `json:"timestamp"`  // Timestamp UTC время мутации (используется только для tie-break)
	TableName string    `json:"table_name"` // TableName логический тип сущности ("habits", "sessions", "metrics")
	RecordID  string    `json:"record_id"`  // RecordID идентификатор сущности внутри таблицы
	Operation string    `json:"operation"`  // Operation одна из insert/update/delete
	DeviceID  string    `json:"device_id"`  // DeviceID идентификатор устройства-источника
	Payload   []byte    `json:"payload"`    // Payload сериализованный снимок сущности (пустой для delete)
	Seq       int64     `json:"seq"`        // Seq локальный монотонный номер записи на устройстве
}

// PushRequest представляет запрос на отправку локальных изменений
type PushRequest struct {
	DeviceID string         `json:"device_id"`
	Records  []ChangeRecord `json:"records"`
}

// PushAck статус приема одной записи сервером.
// Повторная отправка уже принятой записи возвращает Accepted=true,
// Duplicate=true и не меняет состояние сервера.
type PushAck struct {
	Reason    string `json:"reason,omitempty"` // Reason причина отказа (только при Accepted=false)
	Seq       int64  `json:"seq"`              // Seq локальный номер записи на устройстве
	Accepted  bool   `json:"accepted"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// PushResponse представляет ответ сервера на push
type PushResponse struct {
	ServerTime time.Time `json:"server_time"`
	Acks       []PushAck `json:"acks"`
}

// PullResponse представляет изменения сервера новее watermark клиента.
// Собственные записи запрашивающего устройства сервер не возвращает.
type PullResponse struct {
	ServerTime time.Time      `json:"server_time"`
	Records    []ChangeRecord `json:"records"`
}
