package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/validation"
	"github.com/iudanet/habitsync/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// DeviceIDKey ключ для хранения device_id в контексте
	DeviceIDKey contextKey = "device_id"
	// DeviceNameKey ключ для хранения имени устройства в контексте
	DeviceNameKey contextKey = "device_name"
)

// GetDeviceID извлекает device_id из контекста запроса
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}

// GetDeviceName извлекает имя устройства из контекста запроса
func GetDeviceName(ctx context.Context) (string, bool) {
	deviceName, ok := ctx.Value(DeviceNameKey).(string)
	return deviceName, ok
}

// ChangeStorage определяет интерфейс для работы с фидом изменений
type ChangeStorage interface {
	SaveChange(ctx context.Context, record *models.ChangeRecord) (bool, error)
	GetChangesSince(ctx context.Context, excludeDeviceID string, since time.Time) ([]*models.ChangeRecord, error)
}

// DeviceTracker отмечает время последнего контакта устройства
type DeviceTracker interface {
	TouchDevice(ctx context.Context, deviceID string, lastSyncAt time.Time) error
}

// Notifier рассылает события подключенным устройствам, кроме источника.
// Доставка best-effort: ошибки не влияют на результат синхронизации.
type Notifier interface {
	Broadcast(originDeviceID string, event api.Event)
}

// SyncHandler handles push/pull synchronization requests
type SyncHandler struct {
	logger   *slog.Logger
	changes  ChangeStorage
	devices  DeviceTracker
	notifier Notifier
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, changes ChangeStorage, devices DeviceTracker, notifier Notifier) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		changes:  changes,
		devices:  devices,
		notifier: notifier,
	}
}

// Push обрабатывает POST /api/v1/sync/push
// Принимает пакет записей журнала от устройства. Каждая запись
// подтверждается отдельным ack: прием идемпотентен, повтор уже
// принятой записи возвращает Accepted=true, Duplicate=true.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем device_id из контекста (установлен AuthMiddleware)
	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode push request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Устройство может отправлять только собственные записи
	if req.DeviceID != deviceID {
		h.logger.WarnContext(ctx, "push device_id mismatch",
			slog.String("expected", deviceID),
			slog.String("got", req.DeviceID))
		h.sendError(w, "device_id mismatch", http.StatusForbidden)
		return
	}

	h.logger.InfoContext(ctx, "push request",
		slog.String("device_id", deviceID),
		slog.Int("records_count", len(req.Records)))

	acks := make([]api.PushAck, 0, len(req.Records))
	accepted := 0

	for _, wire := range req.Records {
		// Отклоненная запись не прерывает пакет: остальные принимаются
		if reason := h.validateRecord(wire); reason != "" {
			acks = append(acks, api.PushAck{Seq: wire.Seq, Accepted: false, Reason: reason})
			continue
		}

		record := &models.ChangeRecord{
			ID:        wire.Seq,
			TableName: wire.TableName,
			RecordID:  wire.RecordID,
			Operation: models.Operation(wire.Operation),
			Payload:   wire.Payload,
			DeviceID:  deviceID,
			Timestamp: wire.Timestamp,
		}

		stored, err := h.changes.SaveChange(ctx, record)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to save change",
				slog.Any("error", err),
				slog.Int64("seq", wire.Seq))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if stored {
			accepted++
		}
		acks = append(acks, api.PushAck{Seq: wire.Seq, Accepted: true, Duplicate: !stored})
	}

	// Обновляем время контакта устройства (не критично при ошибке)
	if err := h.devices.TouchDevice(ctx, deviceID, time.Now().UTC()); err != nil {
		h.logger.WarnContext(ctx, "failed to touch device", slog.Any("error", err))
	}

	// Будим остальные устройства: у сервера есть новые данные
	if accepted > 0 {
		event, err := api.NewEvent(api.EventSyncRequested, api.SyncRequestedPayload{
			RequestingDeviceID: deviceID,
			Timestamp:          time.Now().UTC(),
		})
		if err == nil {
			h.notifier.Broadcast(deviceID, event)
		}
	}

	resp := api.PushResponse{
		ServerTime: time.Now().UTC(),
		Acks:       acks,
	}

	h.sendJSON(w, resp, http.StatusOK)

	h.logger.InfoContext(ctx, "push completed",
		slog.String("device_id", deviceID),
		slog.Int("received", len(req.Records)),
		slog.Int("new", accepted))
}

// Changes обрабатывает GET /api/v1/sync/changes?since=RFC3339
// Возвращает изменения других устройств новее since. Собственные
// записи запрашивающего устройства не возвращаются.
func (h *SyncHandler) Changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device ID not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Парсим параметр since; пустой означает полный фид
	var since time.Time
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339Nano, sinceStr)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid since parameter",
				slog.String("since", sinceStr),
				slog.Any("error", err))
			h.sendError(w, "invalid since parameter, expected RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	changes, err := h.changes.GetChangesSince(ctx, deviceID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get changes",
			slog.Any("error", err),
			slog.String("device_id", deviceID))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	records := make([]api.ChangeRecord, 0, len(changes))
	for _, record := range changes {
		records = append(records, api.ChangeRecord{
			Seq:       record.ID,
			TableName: record.TableName,
			RecordID:  record.RecordID,
			Operation: string(record.Operation),
			Payload:   record.Payload,
			DeviceID:  record.DeviceID,
			Timestamp: record.Timestamp,
		})
	}

	resp := api.PullResponse{
		ServerTime: time.Now().UTC(),
		Records:    records,
	}

	h.sendJSON(w, resp, http.StatusOK)

	h.logger.InfoContext(ctx, "changes request completed",
		slog.String("device_id", deviceID),
		slog.Time("since", since),
		slog.Int("returned", len(records)))
}

// validateRecord проверяет поля записи, возвращает причину отказа
// или пустую строку для корректной записи
func (h *SyncHandler) validateRecord(wire api.ChangeRecord) string {
	if !models.Operation(wire.Operation).Valid() {
		return "unknown operation: " + wire.Operation
	}
	if err := validation.ValidateTableName(wire.TableName); err != nil {
		return err.Error()
	}
	if err := validation.ValidateRecordID(wire.RecordID); err != nil {
		return err.Error()
	}
	if wire.Timestamp.IsZero() {
		return "timestamp is required"
	}
	return ""
}

// sendJSON отправляет JSON ответ
func (h *SyncHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *SyncHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
