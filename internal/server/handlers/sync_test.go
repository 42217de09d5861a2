package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/server/storage/sqlite"
	"github.com/iudanet/habitsync/pkg/api"
)

// recordingNotifier собирает broadcast вызовы для проверок
type recordingNotifier struct {
	mu     sync.Mutex
	events []api.Event
	origin []string
}

func (n *recordingNotifier) Broadcast(originDeviceID string, event api.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.origin = append(n.origin, originDeviceID)
	n.events = append(n.events, event)
}

func (n *recordingNotifier) broadcasts() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func newSyncHandler(t *testing.T) (*SyncHandler, *sqlite.Storage, *recordingNotifier) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	// Push обновляет время контакта устройства — оно должно существовать
	require.NoError(t, store.CreateDevice(context.Background(), &models.DeviceInfo{
		DeviceID: "device-1",
		Name:     "laptop",
		Platform: "linux",
		Active:   true,
	}))

	notifier := &recordingNotifier{}
	return NewSyncHandler(testLogger(), store, store, notifier), store, notifier
}

func authedRequest(method, target string, body []byte, deviceID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), DeviceIDKey, deviceID)
	ctx = context.WithValue(ctx, DeviceNameKey, "laptop")
	return req.WithContext(ctx)
}

func pushBody(t *testing.T, deviceID string, records ...api.ChangeRecord) []byte {
	t.Helper()

	body, err := json.Marshal(api.PushRequest{DeviceID: deviceID, Records: records})
	require.NoError(t, err)
	return body
}

func wireChange(seq int64, recordID string) api.ChangeRecord {
	return api.ChangeRecord{
		Seq:       seq,
		TableName: "habits",
		RecordID:  recordID,
		Operation: api.OperationInsert,
		Payload:   []byte(`{"name":"Morning Run"}`),
		DeviceID:  "device-1",
		Timestamp: time.Now().UTC(),
	}
}

func TestPush(t *testing.T) {
	handler, _, notifier := newSyncHandler(t)

	body := pushBody(t, "device-1", wireChange(1, "h-1"), wireChange(2, "h-2"))
	rec := httptest.NewRecorder()
	handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Acks, 2)
	for _, ack := range resp.Acks {
		assert.True(t, ack.Accepted)
		assert.False(t, ack.Duplicate)
	}
	assert.False(t, resp.ServerTime.IsZero())

	// Принятые записи будят остальные устройства
	assert.Equal(t, 1, notifier.broadcasts())
	assert.Equal(t, api.EventSyncRequested, notifier.events[0].Name)
	assert.Equal(t, "device-1", notifier.origin[0])
}

func TestPush_DuplicateDelivery(t *testing.T) {
	handler, _, notifier := newSyncHandler(t)

	body := pushBody(t, "device-1", wireChange(1, "h-1"))

	rec := httptest.NewRecorder()
	handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Повтор после частично неудавшегося цикла клиента
	rec = httptest.NewRecorder()
	handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Acks, 1)
	assert.True(t, resp.Acks[0].Accepted)
	assert.True(t, resp.Acks[0].Duplicate)

	// Дубликаты не генерируют событий
	assert.Equal(t, 1, notifier.broadcasts())
}

func TestPush_DeviceIDMismatch(t *testing.T) {
	handler, _, _ := newSyncHandler(t)

	// Устройство пытается отправить записи от чужого имени
	body := pushBody(t, "device-2", wireChange(1, "h-1"))
	rec := httptest.NewRecorder()
	handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPush_RejectedRecordDoesNotAbortBatch(t *testing.T) {
	handler, store, _ := newSyncHandler(t)

	bad := wireChange(1, "h-1")
	bad.Operation = "upsert"
	good := wireChange(2, "h-2")

	body := pushBody(t, "device-1", bad, good)
	rec := httptest.NewRecorder()
	handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Acks, 2)

	assert.False(t, resp.Acks[0].Accepted)
	assert.Contains(t, resp.Acks[0].Reason, "unknown operation")
	assert.True(t, resp.Acks[1].Accepted)

	// В фид попала только корректная запись
	changes, err := store.GetChangesSince(context.Background(), "other", time.Time{})
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "h-2", changes[0].RecordID)
}

func TestPush_ValidationReasons(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*api.ChangeRecord)
	}{
		{name: "bad table name", mutate: func(r *api.ChangeRecord) { r.TableName = "Habits!" }},
		{name: "empty record id", mutate: func(r *api.ChangeRecord) { r.RecordID = "" }},
		{name: "zero timestamp", mutate: func(r *api.ChangeRecord) { r.Timestamp = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _ := newSyncHandler(t)

			record := wireChange(1, "h-1")
			tt.mutate(&record)

			body := pushBody(t, "device-1", record)
			rec := httptest.NewRecorder()
			handler.Push(rec, authedRequest(http.MethodPost, "/api/v1/sync/push", body, "device-1"))

			require.Equal(t, http.StatusOK, rec.Code)

			var resp api.PushResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Acks, 1)
			assert.False(t, resp.Acks[0].Accepted)
			assert.NotEmpty(t, resp.Acks[0].Reason)
		})
	}
}

func TestPush_Unauthorized(t *testing.T) {
	handler, _, _ := newSyncHandler(t)

	// Запрос без device_id в контексте (AuthMiddleware не отработал)
	body := pushBody(t, "device-1", wireChange(1, "h-1"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Push(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChanges(t *testing.T) {
	handler, store, _ := newSyncHandler(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Записи своего и чужого устройства
	_, err := store.SaveChange(ctx, &models.ChangeRecord{
		ID: 1, DeviceID: "device-1", TableName: "habits", RecordID: "h-1",
		Operation: models.OpInsert, Payload: []byte(`{}`), Timestamp: now,
	})
	require.NoError(t, err)
	_, err = store.SaveChange(ctx, &models.ChangeRecord{
		ID: 1, DeviceID: "device-2", TableName: "habits", RecordID: "h-2",
		Operation: models.OpInsert, Payload: []byte(`{}`), Timestamp: now,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.Changes(rec, authedRequest(http.MethodGet, "/api/v1/sync/changes", nil, "device-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Собственное эхо не возвращается
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "device-2", resp.Records[0].DeviceID)
	assert.Equal(t, "h-2", resp.Records[0].RecordID)
}

func TestChanges_SinceFilter(t *testing.T) {
	handler, store, _ := newSyncHandler(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := store.SaveChange(ctx, &models.ChangeRecord{
		ID: 1, DeviceID: "device-2", TableName: "habits", RecordID: "h-old",
		Operation: models.OpInsert, Payload: []byte(`{}`), Timestamp: base,
	})
	require.NoError(t, err)
	_, err = store.SaveChange(ctx, &models.ChangeRecord{
		ID: 2, DeviceID: "device-2", TableName: "habits", RecordID: "h-new",
		Operation: models.OpInsert, Payload: []byte(`{}`), Timestamp: base.Add(time.Hour),
	})
	require.NoError(t, err)

	target := "/api/v1/sync/changes?since=" + base.Add(time.Minute).Format(time.RFC3339Nano)
	rec := httptest.NewRecorder()
	handler.Changes(rec, authedRequest(http.MethodGet, target, nil, "device-1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.PullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "h-new", resp.Records[0].RecordID)
}

func TestChanges_InvalidSince(t *testing.T) {
	handler, _, _ := newSyncHandler(t)

	rec := httptest.NewRecorder()
	handler.Changes(rec, authedRequest(http.MethodGet, "/api/v1/sync/changes?since=yesterday", nil, "device-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChanges_Unauthorized(t *testing.T) {
	handler, _, _ := newSyncHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/changes", nil)
	rec := httptest.NewRecorder()
	handler.Changes(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
