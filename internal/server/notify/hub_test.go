package notify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/server/handlers"
	"github.com/iudanet/habitsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHubServer поднимает хаб за httptest сервером. Авторизация
// подменяется query-параметром device вместо AuthMiddleware.
func newHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(testLogger())
	t.Cleanup(hub.Close)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notify", func(w http.ResponseWriter, r *http.Request) {
		if deviceID := r.URL.Query().Get("device"); deviceID != "" {
			ctx := context.WithValue(r.Context(), handlers.DeviceIDKey, deviceID)
			r = r.WithContext(ctx)
		}
		hub.Handler(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return hub, srv
}

func dialDevice(t *testing.T, srv *httptest.Server, deviceID string) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, srv.URL+"/api/v1/notify?device="+deviceID, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	})
	return conn
}

func (h *Hub) connCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func TestHub_RelaysEventsBetweenDevices(t *testing.T) {
	hub, srv := newHubServer(t)

	sender := dialDevice(t, srv, "device-1")
	receiver := dialDevice(t, srv, "device-2")

	// Рукопожатие завершается раньше регистрации в хабе
	require.Eventually(t, func() bool {
		return hub.connCount() == 2
	}, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sent := api.Event{Name: api.EventDataChanged, Payload: []byte(`{"table":"habits"}`)}
	require.NoError(t, wsjson.Write(ctx, sender, sent))

	var got api.Event
	require.NoError(t, wsjson.Read(ctx, receiver, &got))
	assert.Equal(t, api.EventDataChanged, got.Name)
	assert.JSONEq(t, `{"table":"habits"}`, string(got.Payload))

	// Источник не получает собственное эхо
	echoCtx, echoCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer echoCancel()

	var echo api.Event
	err := wsjson.Read(echoCtx, sender, &echo)
	assert.Error(t, err)
}

func TestHub_BroadcastFromServer(t *testing.T) {
	hub, srv := newHubServer(t)

	receiver := dialDevice(t, srv, "device-2")

	require.Eventually(t, func() bool {
		return hub.connCount() == 1
	}, time.Second, 10*time.Millisecond)

	// Push handler будит остальные устройства через хаб
	hub.Broadcast("device-1", api.Event{Name: api.EventSyncRequested})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got api.Event
	require.NoError(t, wsjson.Read(ctx, receiver, &got))
	assert.Equal(t, api.EventSyncRequested, got.Name)
}

func TestHub_Unauthorized(t *testing.T) {
	_, srv := newHubServer(t)

	// Запрос без device_id в контексте (AuthMiddleware не отработал)
	resp, err := http.Get(srv.URL + "/api/v1/notify")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_Close(t *testing.T) {
	hub, srv := newHubServer(t)

	conn := dialDevice(t, srv, "device-1")

	require.Eventually(t, func() bool {
		return hub.connCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.connCount())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var event api.Event
	err := wsjson.Read(ctx, conn, &event)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}
