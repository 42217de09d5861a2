// Package notify реализует серверную часть канала уведомлений:
// websocket хаб, ретранслирующий события между устройствами.
// Доставка best-effort: хаб не хранит очередь и не гарантирует
// доставку отключенным устройствам.
package notify

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/iudanet/habitsync/internal/server/handlers"
	"github.com/iudanet/habitsync/pkg/api"
)

// writeTimeout ограничивает отправку события одному устройству:
// медленное соединение не блокирует рассылку остальным
const writeTimeout = 5 * time.Second

// Hub держит активные websocket соединения устройств
type Hub struct {
	logger *slog.Logger
	conns  map[*websocket.Conn]string
	mu     sync.RWMutex
}

// NewHub creates a new notification hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[*websocket.Conn]string),
	}
}

// Handler обрабатывает GET /api/v1/notify
// Апгрейд до websocket, затем ретрансляция: каждое событие от
// устройства рассылается всем остальным подключенным устройствам.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := handlers.GetDeviceID(ctx)
	if !ok {
		h.logger.Error("device ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Клиенты на LAN подключаются с произвольных origin
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Warn("websocket accept failed",
			"device_id", deviceID,
			"error", err)
		return
	}

	h.register(conn, deviceID)
	defer h.unregister(conn)

	h.logger.Info("notify channel connected", "device_id", deviceID)

	// Читаем события устройства до обрыва соединения
	for {
		var event api.Event
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				h.logger.Info("notify channel disconnected", "device_id", deviceID)
			} else {
				h.logger.Warn("notify channel read failed",
					"device_id", deviceID,
					"error", err)
			}
			return
		}

		h.Broadcast(deviceID, event)
	}
}

// Broadcast рассылает событие всем подключенным устройствам, кроме
// источника. Соединения с ошибкой записи закрываются: устройство
// переподключится само.
func (h *Hub) Broadcast(originDeviceID string, event api.Event) {
	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.conns))
	for conn, deviceID := range h.conns {
		if deviceID != originDeviceID {
			targets = append(targets, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := wsjson.Write(ctx, conn, event)
		cancel()

		if err != nil {
			h.logger.Debug("notify broadcast failed", "event", event.Name, "error", err)
			h.unregister(conn)
			_ = conn.Close(websocket.StatusInternalError, "write failed")
		}
	}

	h.logger.Debug("event broadcast",
		"event", event.Name,
		"origin", originDeviceID,
		"targets", len(targets))
}

// Close закрывает все активные соединения
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	h.conns = make(map[*websocket.Conn]string)
}

// register добавляет соединение устройства
func (h *Hub) register(conn *websocket.Conn, deviceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = deviceID
}

// unregister удаляет соединение
func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}
