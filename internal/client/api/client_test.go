package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/pkg/api"
)

func TestClient_Push(t *testing.T) {
	serverTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync/push", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-1", req.DeviceID)
		require.Len(t, req.Records, 1)

		resp := api.PushResponse{
			ServerTime: serverTime,
			Acks: []api.PushAck{
				{Seq: req.Records[0].Seq, Accepted: true},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("test-token")

	resp, err := client.Push(context.Background(), api.PushRequest{
		DeviceID: "device-1",
		Records: []api.ChangeRecord{
			{
				Seq:       3,
				TableName: "habits",
				RecordID:  "h-1",
				Operation: api.OperationInsert,
				DeviceID:  "device-1",
				Payload:   []byte(`{"name":"Morning Run"}`),
				Timestamp: serverTime,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Acks, 1)
	assert.True(t, resp.Acks[0].Accepted)
	assert.Equal(t, int64(3), resp.Acks[0].Seq)
	assert.True(t, resp.ServerTime.Equal(serverTime))
}

func TestClient_Pull(t *testing.T) {
	since := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/sync/changes", r.URL.Path)
		// Watermark передается с наносекундной точностью
		assert.Equal(t, since.Format(time.RFC3339Nano), r.URL.Query().Get("since"))

		resp := api.PullResponse{
			ServerTime: time.Now().UTC(),
			Records: []api.ChangeRecord{
				{TableName: "habits", RecordID: "h-2", Operation: api.OperationUpdate, DeviceID: "device-2"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Pull(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "h-2", resp.Records[0].RecordID)
}

func TestClient_Pull_ZeroWatermark(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Нулевой watermark — полный фид, параметр since не передается
		assert.False(t, r.URL.Query().Has("since"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.PullResponse{}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Pull(context.Background(), time.Time{})
	require.NoError(t, err)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/devices/register", r.URL.Path)
		// Регистрация идет без токена
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterDeviceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "laptop", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(api.RegisterDeviceResponse{
			Device:      api.DeviceInfo{DeviceID: req.DeviceID, Name: req.Name, Active: true},
			AccessToken: "issued-token",
			ExpiresIn:   3600,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Register(context.Background(), api.RegisterDeviceRequest{
		DeviceID: "device-1",
		Name:     "laptop",
		Platform: "linux",
		Secret:   "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.AccessToken)
	assert.Equal(t, "device-1", resp.Device.DeviceID)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Первый вызов падает 500, повтор проходит
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.PullResponse{}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Pull(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		require.NoError(t, json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid token",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Pull(context.Background(), time.Time{})
	require.Error(t, err)
	// 4xx не повторяется
	assert.Equal(t, int32(1), calls.Load())
	// Сообщение сервера попадает в ошибку
	assert.Contains(t, err.Error(), "invalid token")
}

func TestClient_SetBaseURL(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	first.Close()

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.PullResponse{}))
	}))
	defer second.Close()

	// Discovery переключает транспорт на живой адрес
	client := NewClient(first.URL)
	client.SetBaseURL(second.URL)

	_, err := client.Pull(context.Background(), time.Time{})
	require.NoError(t, err)
}
