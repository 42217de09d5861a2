package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

// Append добавляет запись в журнал изменений.
// Локальный id берется из bucket sequence (монотонный, не переиспользуется),
// timestamp — текущее UTC время, Synced=false.
func (s *Storage) Append(
	ctx context.Context,
	tableName, recordID string,
	op models.Operation,
	payload []byte,
	deviceID string,
) (*models.ChangeRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	if !op.Valid() {
		return nil, fmt.Errorf("invalid operation %q", op)
	}

	record := &models.ChangeRecord{
		TableName: tableName,
		RecordID:  recordID,
		Operation: op,
		Payload:   payload,
		DeviceID:  deviceID,
		Timestamp: time.Now().UTC(),
		Synced:    false,
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChangelog)
		if bucket == nil {
			return storage.ErrStorageClosed
		}

		// NextSequence монотонно растет и никогда не переиспользуется
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		record.ID = int64(seq)

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal change record: %w", err)
		}

		// Ключ big-endian: сканирование bucket идет в порядке id
		if err := bucket.Put(changeKey(record.ID), data); err != nil {
			return fmt.Errorf("failed to save change record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("append transaction failed: %w", err)
	}

	return record, nil
}

// PendingSince возвращает несинхронизированные записи в порядке локального id.
// При ненулевом since дополнительно фильтрует по Timestamp > since.
func (s *Storage) PendingSince(ctx context.Context, since time.Time) ([]*models.ChangeRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.ChangeRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChangelog)
		if bucket == nil {
			return nil
		}

		// ForEach идет по ключам в порядке возрастания — insertion order
		return bucket.ForEach(func(k, v []byte) error {
			var record models.ChangeRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal change record: %w", err)
			}

			if record.Synced {
				return nil
			}
			if !since.IsZero() && !record.Timestamp.After(since) {
				return nil
			}

			records = append(records, &record)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get pending records: %w", err)
	}

	return records, nil
}

// MarkSynced помечает записи синхронизированными. Идемпотентна:
// неизвестные id и уже помеченные записи молча игнорируются.
// Для помеченных insert/update обновляется снимок "последнего общего
// состояния" в bucket snapshots (база для field merge), для delete
// снимок удаляется.
func (s *Storage) MarkSynced(ctx context.Context, ids []int64) error {
	return s.markRecords(ids, true)
}

// MarkSuperseded выводит записи из push-очереди без обновления снимка.
// Проигравшая конфликт запись не должна затирать снимок победителя,
// уже зафиксированный при применении.
func (s *Storage) MarkSuperseded(ctx context.Context, ids []int64) error {
	return s.markRecords(ids, false)
}

// markRecords устанавливает флаг Synced; при updateSnapshot payload
// каждой помеченной записи становится общим снимком ее (table, record)
func (s *Storage) markRecords(ids []int64, updateSnapshot bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if len(ids) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChangelog)
		snapshots := tx.Bucket(bucketSnapshots)
		if bucket == nil || snapshots == nil {
			return storage.ErrStorageClosed
		}

		for _, id := range ids {
			data := bucket.Get(changeKey(id))
			if data == nil {
				continue
			}

			var record models.ChangeRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("failed to unmarshal change record %d: %w", id, err)
			}

			if record.Synced {
				continue
			}

			record.Synced = true

			updated, err := json.Marshal(&record)
			if err != nil {
				return fmt.Errorf("failed to marshal change record %d: %w", id, err)
			}
			if err := bucket.Put(changeKey(id), updated); err != nil {
				return fmt.Errorf("failed to save change record %d: %w", id, err)
			}

			if !updateSnapshot {
				continue
			}

			key := entityKey(record.TableName, record.RecordID)
			switch record.Operation {
			case models.OpDelete:
				if err := snapshots.Delete(key); err != nil {
					return fmt.Errorf("failed to drop snapshot: %w", err)
				}
			default:
				if err := snapshots.Put(key, record.Payload); err != nil {
					return fmt.Errorf("failed to save snapshot: %w", err)
				}
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("mark transaction failed: %w", err)
	}

	return nil
}

// LastSyncedPayload возвращает последний общий снимок для (table, record)
func (s *Storage) LastSyncedPayload(ctx context.Context, tableName, recordID string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var payload []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		snapshots := tx.Bucket(bucketSnapshots)
		if snapshots == nil {
			return storage.ErrChangeNotFound
		}

		data := snapshots.Get(entityKey(tableName, recordID))
		if data == nil {
			return storage.ErrChangeNotFound
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

// SaveCommonSnapshot фиксирует общий снимок для (table, record).
// nil payload удаляет снимок.
func (s *Storage) SaveCommonSnapshot(ctx context.Context, tableName, recordID string, payload []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		snapshots := tx.Bucket(bucketSnapshots)
		if snapshots == nil {
			return storage.ErrStorageClosed
		}

		key := entityKey(tableName, recordID)
		if payload == nil {
			return snapshots.Delete(key)
		}
		return snapshots.Put(key, payload)
	})

	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// PurgeOlderThan удаляет синхронизированные записи старше retention.
// Несинхронизированные записи не трогаются независимо от возраста.
func (s *Storage) PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	cutoff := time.Now().UTC().Add(-retention)
	purged := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChangelog)
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var record models.ChangeRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal change record: %w", err)
			}

			if !record.Synced || !record.Timestamp.Before(cutoff) {
				continue
			}

			if err := cursor.Delete(); err != nil {
				return fmt.Errorf("failed to delete change record: %w", err)
			}
			purged++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("purge transaction failed: %w", err)
	}

	return purged, nil
}

// changeKey кодирует локальный id в big-endian ключ
func changeKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}
