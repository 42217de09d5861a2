package notify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/iudanet/habitsync/pkg/api"
)

// WSChannel реализует канал уведомлений поверх websocket эндпоинта
// сервера. Соединение устанавливается лениво и восстанавливается
// на следующем вызове после обрыва.
type WSChannel struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	baseURL string
	token   string
	mu      sync.Mutex
}

// NewWSChannel creates a websocket notification channel.
// baseURL — адрес сервера (http/https), token — токен устройства.
func NewWSChannel(baseURL, token string, logger *slog.Logger) *WSChannel {
	return &WSChannel{
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

// SetBaseURL переключает канал на адрес, найденный discovery
func (c *WSChannel) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.baseURL != baseURL {
		c.baseURL = baseURL
		c.dropConn()
	}
}

// Publish отправляет событие через websocket. Best-effort: при ошибке
// соединение сбрасывается и ошибка возвращается вызывающему для лога.
func (c *WSChannel) Publish(ctx context.Context, event api.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := c.connLocked(ctx)
	if err != nil {
		return err
	}

	if err := wsjson.Write(ctx, conn, event); err != nil {
		c.dropConn()
		return err
	}
	return nil
}

// Subscribe читает события до отмены контекста или обрыва соединения
func (c *WSChannel) Subscribe(ctx context.Context, handler func(api.Event)) error {
	c.mu.Lock()
	conn, err := c.connLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	for {
		var event api.Event
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			c.mu.Lock()
			c.dropConn()
			c.mu.Unlock()

			if ctx.Err() != nil {
				return nil
			}
			if websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		handler(event)
	}
}

// Close закрывает соединение
func (c *WSChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close(websocket.StatusNormalClosure, "")
	c.conn = nil
	return err
}

// connLocked возвращает живое соединение, устанавливая его при необходимости
func (c *WSChannel) connLocked(ctx context.Context) (*websocket.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}

	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/api/v1/notify"

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: header,
	})
	if err != nil {
		return nil, err
	}

	c.conn = conn
	return conn, nil
}

// dropConn сбрасывает соединение после ошибки
func (c *WSChannel) dropConn() {
	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusInternalError, "reset")
		c.conn = nil
	}
}
