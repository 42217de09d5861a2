// Package notify предоставляет best-effort канал уведомлений между
// устройствами. Доставка at-most-once, fire-and-forget: потеря
// уведомления никогда не влияет на корректность синхронизации —
// авторитетное состояние всегда восстановимо через полный цикл.
package notify

import (
	"context"

	"github.com/iudanet/habitsync/pkg/api"
)

//go:generate moq -out channel_mock.go . Channel

// Channel определяет примитивы publish/subscribe канала уведомлений
type Channel interface {
	// Publish отправляет событие другим подключенным устройствам.
	// Ошибка означает лишь недоставку — вызывающие логируют и продолжают.
	Publish(ctx context.Context, event api.Event) error

	// Subscribe блокирующе читает события и передает их handler.
	// Возвращается при отмене контекста или потере соединения.
	Subscribe(ctx context.Context, handler func(api.Event)) error

	// Close закрывает канал
	Close() error
}

// NopChannel канал-заглушка для работы без сервера уведомлений
type NopChannel struct{}

// Publish отбрасывает событие
func (NopChannel) Publish(ctx context.Context, event api.Event) error { return nil }

// Subscribe блокируется до отмены контекста
func (NopChannel) Subscribe(ctx context.Context, handler func(api.Event)) error {
	<-ctx.Done()
	return nil
}

// Close ничего не делает
func (NopChannel) Close() error { return nil }
