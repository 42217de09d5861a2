package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/habitsync/pkg/api"
)

const (
	// requestTimeout ограничивает каждый HTTP вызов: цикл синхронизации
	// не может зависнуть на транспорте
	requestTimeout = 30 * time.Second

	// retryBase начальная задержка между повторами
	retryBase = 200 * time.Millisecond

	// maxRetries количество повторов для transient ошибок
	maxRetries = 2
)

// Client представляет HTTP клиент для взаимодействия с sync-сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	mu         sync.RWMutex
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetBaseURL переключает клиента на адрес, найденный discovery
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = baseURL
}

// SetToken устанавливает токен доступа устройства
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Register регистрирует устройство и получает токен доступа
func (c *Client) Register(ctx context.Context, req api.RegisterDeviceRequest) (*api.RegisterDeviceResponse, error) {
	var resp api.RegisterDeviceResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/devices/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет локальные записи на сервер.
// Transient ошибки повторяются с backoff: записи идемпотентны
// на уровне сервера, повтор безопасен.
func (c *Client) Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error) {
	var resp api.PushResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.doRequest(ctx, http.MethodPost, "/api/v1/sync/push", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// Pull возвращает изменения сервера новее watermark
func (c *Client) Pull(ctx context.Context, since time.Time) (*api.PullResponse, error) {
	path := "/api/v1/sync/changes"
	if !since.IsZero() {
		path += "?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339Nano))
	}

	var resp api.PullResponse
	err := c.withRetry(ctx, func(ctx context.Context) error {
		return c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// ListDevices возвращает известные серверу устройства
func (c *Client) ListDevices(ctx context.Context) (*api.ListDevicesResponse, error) {
	var resp api.ListDevicesResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/devices", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list devices request failed: %w", err)
	}
	return &resp, nil
}

// withRetry повторяет transient ошибки с fibonacci backoff
func (c *Client) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(retryBase))
	return retry.Do(ctx, backoff, fn)
}

// statusError ошибка с HTTP статусом сервера
type statusError struct {
	message string
	code    int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.code, e.message)
}

// doRequest выполняет HTTP запрос.
// Сетевые ошибки и 5xx помечаются retryable, 4xx — нет.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	c.mu.RLock()
	baseURL := c.baseURL
	token := c.token
	c.mu.RUnlock()

	requestURL := baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки transient — повтор безопасен
		return retry.RetryableError(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.RetryableError(fmt.Errorf("failed to read response body: %w", err))
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}

		statusErr := &statusError{code: resp.StatusCode, message: message}
		if resp.StatusCode >= 500 {
			return retry.RetryableError(statusErr)
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
