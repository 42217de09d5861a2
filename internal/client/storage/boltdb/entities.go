package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
)

// Референсная реализация LocalDataStore поверх BoltDB.
// Каждая логическая таблица — вложенный bucket внутри entities;
// bolt Update дает транзакционность per record.

// ReadEntity возвращает снимок сущности
func (s *Storage) ReadEntity(ctx context.Context, tableName, recordID string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var payload []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketEntities)
		if root == nil {
			return storage.ErrEntityNotFound
		}

		table := root.Bucket([]byte(tableName))
		if table == nil {
			return storage.ErrEntityNotFound
		}

		data := table.Get([]byte(recordID))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		payload = make([]byte, len(data))
		copy(payload, data)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return payload, nil
}

// WriteEntity записывает снимок сущности
func (s *Storage) WriteEntity(ctx context.Context, tableName, recordID string, payload []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketEntities)
		if root == nil {
			return storage.ErrStorageClosed
		}

		table, err := root.CreateBucketIfNotExists([]byte(tableName))
		if err != nil {
			return fmt.Errorf("failed to create table bucket: %w", err)
		}

		return table.Put([]byte(recordID), payload)
	})

	if err != nil {
		return fmt.Errorf("failed to write entity: %w", err)
	}
	return nil
}

// ListEntities возвращает все сущности таблицы: record id → payload.
// Пустая таблица дает пустую map, не ошибку.
func (s *Storage) ListEntities(ctx context.Context, tableName string) (map[string][]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	entities := make(map[string][]byte)

	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketEntities)
		if root == nil {
			return nil
		}

		table := root.Bucket([]byte(tableName))
		if table == nil {
			return nil
		}

		return table.ForEach(func(k, v []byte) error {
			payload := make([]byte, len(v))
			copy(payload, v)
			entities[string(k)] = payload
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	return entities, nil
}

// DeleteEntity удаляет сущность
func (s *Storage) DeleteEntity(ctx context.Context, tableName, recordID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketEntities)
		if root == nil {
			return storage.ErrEntityNotFound
		}

		table := root.Bucket([]byte(tableName))
		if table == nil {
			return storage.ErrEntityNotFound
		}

		if table.Get([]byte(recordID)) == nil {
			return storage.ErrEntityNotFound
		}

		return table.Delete([]byte(recordID))
	})
}
