// Package syncer реализует оркестратор синхронизации: один цикл
// pull → resolve → push → watermark поверх журнала изменений,
// локального хранилища и транспорта.
package syncer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	httpClient "github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/notify"
	"github.com/iudanet/habitsync/internal/client/resolve"
	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/pkg/api"
)

//go:generate moq -out discoverer_mock.go . Discoverer

// Discoverer определяет поиск сервера для оркестратора
type Discoverer interface {
	// Discover возвращает адрес живого сервера; ok=false означает offline
	Discover(ctx context.Context) (addr string, ok bool)
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс оркестратора синхронизации
type Service interface {
	// Synchronize выполняет один цикл синхронизации.
	// Ошибка возвращается только при недоступности локального хранилища;
	// offline и сетевые сбои выражаются полями SyncResult.
	Synchronize(ctx context.Context) (*models.SyncResult, error)

	// PendingCount возвращает количество записей, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)

	// ResolveManual явно разрешает эскалированный конфликт выбранным
	// payload: записывает сущность, журналирует изменение для push
	ResolveManual(ctx context.Context, key models.ChangeKey, payload []byte) error
}

// service handles synchronization between this device and the server
type service struct {
	transport httpClient.ClientAPI
	discovery Discoverer
	changelog storage.ChangeLog
	datastore storage.LocalDataStore
	metadata  storage.MetadataStorage
	devices   storage.DeviceStorage
	resolver  *resolve.Resolver
	notifier  notify.Channel
	logger    *slog.Logger
	deviceID  string

	// syncMu single-flight guard: не более одного цикла одновременно
	syncMu sync.Mutex
}

// NewService creates a new sync orchestrator.
// Оркестратор не владеет персистентным состоянием: всё durable
// состояние живет в changelog/metadata/devices хранилищах.
func NewService(
	transport httpClient.ClientAPI,
	discovery Discoverer,
	changelog storage.ChangeLog,
	datastore storage.LocalDataStore,
	metadata storage.MetadataStorage,
	devices storage.DeviceStorage,
	resolver *resolve.Resolver,
	notifier notify.Channel,
	deviceID string,
	logger *slog.Logger,
) Service {
	return &service{
		transport: transport,
		discovery: discovery,
		changelog: changelog,
		datastore: datastore,
		metadata:  metadata,
		devices:   devices,
		resolver:  resolver,
		notifier:  notifier,
		deviceID:  deviceID,
		logger:    logger,
	}
}

// Synchronize выполняет один цикл синхронизации.
// Конкурентный вызов (ручной + фоновый таймер) не интерливится:
// второй вызов сразу получает статус "sync already in progress".
func (s *service) Synchronize(ctx context.Context) (*models.SyncResult, error) {
	if !s.syncMu.TryLock() {
		return &models.SyncResult{
			Success:     false,
			Message:     "sync already in progress",
			CompletedAt: time.Now().UTC(),
		}, nil
	}
	defer s.syncMu.Unlock()

	return s.cycle(ctx)
}

// cycle один проход pull → resolve → push → watermark
func (s *service) cycle(ctx context.Context) (*models.SyncResult, error) {
	started := time.Now().UTC()
	result := &models.SyncResult{}

	s.logger.Info("starting synchronization", "device_id", s.deviceID)
	s.publishStatus(ctx, models.StatusSyncing)

	// Шаг 1: поиск сервера. Его отсутствие — нормальный offline исход.
	addr, online := s.discovery.Discover(ctx)
	if !online {
		result.Success = false
		result.Message = "offline"
		result.CompletedAt = time.Now().UTC()
		s.publishStatus(ctx, models.StatusOffline)
		return result, nil
	}
	s.transport.SetBaseURL(addr)

	watermark, err := s.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		return s.failStorage(ctx, result, err)
	}

	// Несинхронизированные локальные записи; для каждой (table, record)
	// пары конфликтует последняя по локальному порядку
	pending, err := s.changelog.PendingSince(ctx, time.Time{})
	if err != nil {
		return s.failStorage(ctx, result, err)
	}

	pendingByKey := make(map[models.ChangeKey]*models.ChangeRecord, len(pending))
	for _, record := range pending {
		pendingByKey[record.Key()] = record
	}

	// Шаг 2: pull изменений сервера новее watermark
	pullResp, err := s.transport.Pull(ctx, watermark)
	if err != nil {
		s.logger.Warn("pull failed, treating server as unreachable", "error", err)
		result.AddError(models.KindServerUnreachable, "", "", err)
		result.Success = false
		result.Message = "server unreachable"
		result.CompletedAt = time.Now().UTC()
		s.publishStatus(ctx, models.StatusFailed)
		return result, nil
	}

	// clean=false означает частичный сбой: watermark не двигается,
	// следующий цикл безопасно повторяет то же окно (at-least-once)
	clean := true
	escalated := make(map[models.ChangeKey]struct{})
	superseded := make([]int64, 0)

	for _, wire := range pullResp.Records {
		remote := fromWire(wire)

		local, hasPending := pendingByKey[remote.Key()]
		if hasPending && resolve.Detected(local, remote) {
			// Шаг 3: разрешение конфликта
			ok := s.resolveConflict(ctx, result, local, remote, escalated, &superseded)
			if !ok {
				clean = false
			}
			continue
		}

		// Неконфликтующее удаленное изменение применяется напрямую
		if err := s.applyRemote(ctx, remote); err != nil {
			clean = false
			result.AddError(models.KindStorageUnavailable, remote.TableName, remote.RecordID, err)
			continue
		}
		result.SyncedRecords++
		s.publishDataChanged(ctx, remote)
	}

	// Проигравшие и замещенные merge локальные записи не пушатся.
	// MarkSuperseded не трогает общий снимок: его уже зафиксировал
	// payload победителя при применении.
	if len(superseded) > 0 {
		if err := s.changelog.MarkSuperseded(ctx, superseded); err != nil {
			return s.failStorage(ctx, result, err)
		}
	}

	// Шаг 4: push всех еще несинхронизированных записей,
	// включая свежесинтезированные резолвером
	if !s.pushPending(ctx, result, escalated) {
		clean = false
	}

	// Шаг 5: watermark двигается на время начала цикла только при
	// чистом завершении без эскалаций — прерванный цикл повторит
	// то же окно
	if clean && len(result.Conflicts) == 0 {
		if err := s.metadata.SaveLastSyncTimestamp(ctx, started); err != nil {
			s.logger.Warn("failed to save last sync timestamp", "error", err)
		}
		s.touchOwnDevice(ctx, started)
	}

	// Шаг 6: итог и best-effort уведомление
	result.Success = len(result.Errors) == 0
	result.CompletedAt = time.Now().UTC()
	switch {
	case !result.Success:
		result.Message = "completed with errors"
		s.publishStatus(ctx, models.StatusFailed)
	case len(result.Conflicts) > 0:
		result.Message = "completed with unresolved conflicts"
		s.publishStatus(ctx, models.StatusCompleted)
	default:
		result.Message = "completed"
		s.publishStatus(ctx, models.StatusCompleted)
	}

	s.logger.Info("synchronization completed",
		"synced", result.SyncedRecords,
		"conflicts", len(result.Conflicts),
		"errors", len(result.Errors),
		"success", result.Success)

	return result, nil
}

// resolveConflict прогоняет пару local/remote через резолвер и
// применяет исход. Возвращает false при сбое локального хранилища.
func (s *service) resolveConflict(
	ctx context.Context,
	result *models.SyncResult,
	local, remote *models.ChangeRecord,
	escalated map[models.ChangeKey]struct{},
	superseded *[]int64,
) bool {
	key := local.Key()

	base, err := s.changelog.LastSyncedPayload(ctx, key.TableName, key.RecordID)
	if err != nil && !errors.Is(err, storage.ErrChangeNotFound) {
		result.AddError(models.KindStorageUnavailable, key.TableName, key.RecordID, err)
		return false
	}

	conflictCase := &resolve.Case{
		Local:    local,
		Remote:   remote,
		Base:     base,
		Strategy: s.resolver.Strategy(),
		State:    resolve.StateDetected,
	}

	outcome := s.resolver.Resolve(conflictCase)
	result.Errors = append(result.Errors, outcome.Warnings...)

	if outcome.State == resolve.StateEscalated {
		// Отложенное решение пользователя: ни локальное, ни удаленное
		// состояние не меняется
		result.Conflicts = append(result.Conflicts, key)
		escalated[key] = struct{}{}
		return true
	}

	winner := outcome.Winner

	if err := s.applyWinner(ctx, winner); err != nil {
		result.AddError(models.KindStorageUnavailable, key.TableName, key.RecordID, err)
		return false
	}
	result.SyncedRecords++
	s.publishDataChanged(ctx, winner)

	if !outcome.RePush {
		// Сервер победил: локальная запись замещена и не пушится
		*superseded = append(*superseded, local.ID)
		return true
	}

	// Локальная запись и есть победитель — остается pending и уйдет
	// в push. Синтезированный merge-победитель журналируется заново,
	// а замещенная локальная запись выбывает.
	if !sameChange(winner, local) {
		if _, err := s.changelog.Append(
			ctx, winner.TableName, winner.RecordID, winner.Operation, winner.Payload, s.deviceID,
		); err != nil {
			result.AddError(models.KindStorageUnavailable, key.TableName, key.RecordID, err)
			return false
		}
		*superseded = append(*superseded, local.ID)
	}

	return true
}

// applyRemote применяет неконфликтующее удаленное изменение к
// локальному хранилищу и фиксирует общий снимок
func (s *service) applyRemote(ctx context.Context, remote *models.ChangeRecord) error {
	return s.apply(ctx, remote)
}

// applyWinner применяет победителя конфликта
func (s *service) applyWinner(ctx context.Context, winner *models.ChangeRecord) error {
	return s.apply(ctx, winner)
}

// apply транзакционно записывает изменение в LocalDataStore.
// Удаление несуществующей сущности — no-op delete-delete конфликт.
func (s *service) apply(ctx context.Context, record *models.ChangeRecord) error {
	switch record.Operation {
	case models.OpDelete:
		err := s.datastore.DeleteEntity(ctx, record.TableName, record.RecordID)
		if err != nil && !errors.Is(err, storage.ErrEntityNotFound) {
			return err
		}
		return s.changelog.SaveCommonSnapshot(ctx, record.TableName, record.RecordID, nil)
	default:
		if err := s.datastore.WriteEntity(ctx, record.TableName, record.RecordID, record.Payload); err != nil {
			return err
		}
		return s.changelog.SaveCommonSnapshot(ctx, record.TableName, record.RecordID, record.Payload)
	}
}

// pushPending отправляет несинхронизированные записи и помечает
// принятые. Эскалированные ключи не пушатся: их состояние заморожено
// до явного разрешения. Возвращает false при частичном сбое.
func (s *service) pushPending(ctx context.Context, result *models.SyncResult, escalated map[models.ChangeKey]struct{}) bool {
	pending, err := s.changelog.PendingSince(ctx, time.Time{})
	if err != nil {
		result.AddError(models.KindStorageUnavailable, "", "", err)
		return false
	}

	records := make([]api.ChangeRecord, 0, len(pending))
	byID := make(map[int64]*models.ChangeRecord, len(pending))
	for _, record := range pending {
		if _, isEscalated := escalated[record.Key()]; isEscalated {
			continue
		}
		records = append(records, toWire(record))
		byID[record.ID] = record
	}

	if len(records) == 0 {
		return true
	}

	pushResp, err := s.transport.Push(ctx, api.PushRequest{
		DeviceID: s.deviceID,
		Records:  records,
	})
	if err != nil {
		// Уже примененные pull-изменения не откатываются: pull
		// идемпотентен, несинхронизированные записи повторятся
		// на следующем цикле
		s.logger.Warn("push failed", "error", err)
		result.AddError(models.KindServerUnreachable, "", "", err)
		return false
	}

	accepted := make([]int64, 0, len(pushResp.Acks))
	clean := true
	for _, ack := range pushResp.Acks {
		record, known := byID[ack.Seq]
		if !known {
			continue
		}
		if !ack.Accepted {
			clean = false
			result.AddError(models.KindServerUnreachable, record.TableName, record.RecordID,
				errors.New("push rejected: "+ack.Reason))
			continue
		}
		accepted = append(accepted, record.ID)
	}

	if err := s.changelog.MarkSynced(ctx, accepted); err != nil {
		result.AddError(models.KindStorageUnavailable, "", "", err)
		return false
	}
	result.SyncedRecords += len(accepted)

	return clean
}

// failStorage оформляет фатальный для цикла сбой локального хранилища
func (s *service) failStorage(ctx context.Context, result *models.SyncResult, err error) (*models.SyncResult, error) {
	s.logger.Error("local storage unavailable", "error", err)
	result.AddError(models.KindStorageUnavailable, "", "", err)
	result.Success = false
	result.Message = "storage unavailable"
	result.CompletedAt = time.Now().UTC()
	s.publishStatus(ctx, models.StatusFailed)
	return result, err
}

// PendingCount возвращает количество записей, ожидающих синхронизации
func (s *service) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.changelog.PendingSince(ctx, time.Time{})
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// ResolveManual применяет выбранный пользователем payload для ранее
// эскалированного конфликта: замещает устаревшие pending записи,
// журналирует и записывает выбранное состояние. Новая запись уйдет
// на сервер следующим циклом.
func (s *service) ResolveManual(ctx context.Context, key models.ChangeKey, payload []byte) error {
	pending, err := s.changelog.PendingSince(ctx, time.Time{})
	if err != nil {
		return err
	}

	stale := make([]int64, 0)
	for _, record := range pending {
		if record.Key() == key {
			stale = append(stale, record.ID)
		}
	}
	// Снимок не обновляется: общим состоянием выбранный payload станет
	// только после подтверждения сервером
	if err := s.changelog.MarkSuperseded(ctx, stale); err != nil {
		return err
	}

	record, err := s.changelog.Append(ctx, key.TableName, key.RecordID, models.OpUpdate, payload, s.deviceID)
	if err != nil {
		return err
	}

	if err := s.datastore.WriteEntity(ctx, key.TableName, key.RecordID, payload); err != nil {
		return err
	}

	s.publishDataChanged(ctx, record)
	s.logger.Info("conflict resolved manually",
		"table", key.TableName,
		"record_id", key.RecordID)
	return nil
}

// touchOwnDevice обновляет запись собственного устройства после
// успешного цикла
func (s *service) touchOwnDevice(ctx context.Context, syncedAt time.Time) {
	device, err := s.devices.GetDevice(ctx, s.deviceID)
	if err != nil {
		if !errors.Is(err, storage.ErrDeviceNotFound) {
			s.logger.Warn("failed to load own device record", "error", err)
			return
		}
		device = &models.DeviceInfo{
			DeviceID:  s.deviceID,
			Active:    true,
			CreatedAt: syncedAt,
		}
	}

	device.LastSyncAt = syncedAt
	device.UpdatedAt = syncedAt

	if err := s.devices.SaveDevice(ctx, device); err != nil {
		s.logger.Warn("failed to update own device record", "error", err)
	}
}

// sameChange сравнивает победителя с локальной записью
func sameChange(winner, local *models.ChangeRecord) bool {
	return winner.ID == local.ID &&
		winner.Operation == local.Operation &&
		string(winner.Payload) == string(local.Payload)
}
