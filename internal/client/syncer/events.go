package syncer

import (
	"context"
	"time"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/pkg/api"
)

// publishStatus отправляет best-effort событие SyncStatusChanged.
// Недоставка только логируется: уведомления не влияют на корректность.
func (s *service) publishStatus(ctx context.Context, status models.SyncStatus) {
	pendingCount, err := s.PendingCount(ctx)
	if err != nil {
		pendingCount = 0
	}

	event, err := api.NewEvent(api.EventSyncStatusChanged, api.SyncStatusChangedPayload{
		Status:       string(status),
		PendingCount: pendingCount,
		DeviceID:     s.deviceID,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to build status event", "error", err)
		return
	}

	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Debug("status notification not delivered", "error", err)
	}
}

// publishDataChanged отправляет best-effort событие DataChanged
func (s *service) publishDataChanged(ctx context.Context, record *models.ChangeRecord) {
	event, err := api.NewEvent(api.EventDataChanged, api.DataChangedPayload{
		TableName: record.TableName,
		RecordID:  record.RecordID,
		Operation: string(record.Operation),
		DeviceID:  record.DeviceID,
		Timestamp: record.Timestamp,
	})
	if err != nil {
		s.logger.Warn("failed to build data changed event", "error", err)
		return
	}

	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Debug("data changed notification not delivered", "error", err)
	}
}

// fromWire конвертирует wire запись в модель
func fromWire(wire api.ChangeRecord) *models.ChangeRecord {
	return &models.ChangeRecord{
		ID:        wire.Seq,
		TableName: wire.TableName,
		RecordID:  wire.RecordID,
		Operation: models.Operation(wire.Operation),
		Payload:   wire.Payload,
		DeviceID:  wire.DeviceID,
		Timestamp: wire.Timestamp,
	}
}

// toWire конвертирует модель в wire запись
func toWire(record *models.ChangeRecord) api.ChangeRecord {
	return api.ChangeRecord{
		Seq:       record.ID,
		TableName: record.TableName,
		RecordID:  record.RecordID,
		Operation: string(record.Operation),
		Payload:   record.Payload,
		DeviceID:  record.DeviceID,
		Timestamp: record.Timestamp,
	}
}
