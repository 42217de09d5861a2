package storage

import "context"

//go:generate moq -out datastore_mock.go . LocalDataStore

// LocalDataStore defines interface for the domain entity store.
// Ядро синхронизации читает и пишет сущности только через этот
// узкий интерфейс; CRUD доменных сущностей — внешний коллаборатор.
type LocalDataStore interface {
	// ReadEntity возвращает снимок сущности.
	// Возвращает ErrEntityNotFound, если сущности нет.
	ReadEntity(ctx context.Context, tableName, recordID string) ([]byte, error)

	// WriteEntity записывает снимок сущности.
	// Запись транзакционна per record: крэш не оставляет
	// полузаписанную сущность.
	WriteEntity(ctx context.Context, tableName, recordID string, payload []byte) error

	// DeleteEntity удаляет сущность.
	// Возвращает ErrEntityNotFound, если сущности нет.
	DeleteEntity(ctx context.Context, tableName, recordID string) error
}
