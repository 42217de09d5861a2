package api

import (
	"encoding/json"
	"time"
)

// Имена событий канала уведомлений
const (
	EventDataChanged       = "data_changed"
	EventSyncStatusChanged = "sync_status_changed"
	EventSyncRequested     = "sync_requested"
)

// Event представляет одно событие канала уведомлений.
// Доставка best-effort, at-most-once: потеря события не влияет
// на корректность синхронизации.
type Event struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// DataChangedPayload уведомление "данные изменились"
type DataChangedPayload struct {
	Timestamp time.Time `json:"timestamp"`
	TableName string    `json:"table_name"`
	RecordID  string    `json:"record_id"`
	Operation string    `json:"operation"`
	DeviceID  string    `json:"device_id"`
}

// SyncStatusChangedPayload уведомление о смене статуса синхронизации
type SyncStatusChangedPayload struct {
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"` // syncing, completed, failed, offline
	DeviceID     string    `json:"device_id"`
	PendingCount int       `json:"pending_count"`
}

// SyncRequestedPayload запрос синхронизации от другого устройства
type SyncRequestedPayload struct {
	Timestamp          time.Time `json:"timestamp"`
	RequestingDeviceID string    `json:"requesting_device_id"`
}

// NewEvent сериализует payload и собирает событие
func NewEvent(name string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Payload: data}, nil
}
