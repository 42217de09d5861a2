// Package resolve реализует разрешение конфликтов синхронизации:
// машину состояний Detected → Resolving → Resolved | Escalated
// и настраиваемые стратегии выбора победителя.
package resolve

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/iudanet/habitsync/internal/models"
)

// Strategy стратегия разрешения конфликтов (настраивается на сессию)
type Strategy string

// Поддерживаемые стратегии
const (
	// StrategyLastWriterWins побеждает более поздний timestamp;
	// при точном равенстве — серверная копия (детерминизм)
	StrategyLastWriterWins Strategy = "last_writer_wins"

	// StrategyPreferLocal всегда локальная копия, timestamp игнорируется
	StrategyPreferLocal Strategy = "prefer_local"

	// StrategyPreferServer всегда серверная копия
	StrategyPreferServer Strategy = "prefer_server"

	// StrategyMergeData field-level merge плоских map относительно
	// последнего общего снимка; несливаемый payload деградирует до LWW
	StrategyMergeData Strategy = "merge_data"

	// StrategyManualResolve решение откладывается: конфликт эскалируется
	// в SyncResult.Conflicts, состояние не меняется до явного
	// разрешения пользователем
	StrategyManualResolve Strategy = "manual"
)

// ParseStrategy парсит строковое значение стратегии
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyLastWriterWins, StrategyPreferLocal, StrategyPreferServer,
		StrategyMergeData, StrategyManualResolve:
		return Strategy(s), nil
	case "":
		// Default
		return StrategyLastWriterWins, nil
	}
	return "", fmt.Errorf("unknown conflict strategy %q", s)
}

// State состояние конфликта
type State string

// Состояния машины разрешения
const (
	StateDetected  State = "detected"
	StateResolving State = "resolving"
	StateResolved  State = "resolved"
	StateEscalated State = "escalated"
)

// Case представляет один конфликт: локальная и серверная записи,
// затрагивающие одну (table, record) пару с различающимися payload.
// Эфемерен: конструируется на время разрешения, наружу уходит
// только Outcome.
type Case struct {
	Local    *models.ChangeRecord
	Remote   *models.ChangeRecord
	Base     []byte // последний общий снимок; nil если его нет
	Strategy Strategy
	State    State
}

// Outcome результат разрешения одного конфликта
type Outcome struct {
	// Winner синтезированная запись-победитель; nil при эскалации
	Winner *models.ChangeRecord

	// Warnings накопленные некритичные ошибки (например, деградация merge)
	Warnings []models.SyncError

	State State

	// RePush true, если победитель отличается от серверной копии
	// и должен быть отправлен на сервер
	RePush bool
}

// Detected проверяет правило обнаружения конфликта: обе записи
// ссылаются на одну (table, record) пару и payload различаются.
func Detected(local, remote *models.ChangeRecord) bool {
	if local.Key() != remote.Key() {
		return false
	}
	return !bytes.Equal(local.Payload, remote.Payload)
}

// Resolver разрешает конфликты согласно выбранной стратегии
type Resolver struct {
	logger   *slog.Logger
	strategy Strategy
}

// New creates a new conflict resolver
func New(strategy Strategy, logger *slog.Logger) *Resolver {
	return &Resolver{
		strategy: strategy,
		logger:   logger,
	}
}

// Strategy возвращает настроенную стратегию
func (r *Resolver) Strategy() Strategy {
	return r.strategy
}

// Resolve прогоняет конфликт через машину состояний и возвращает исход.
// Delete-delete пары разрешаются no-op победой серверной копии
// независимо от стратегии: обе стороны уже согласны.
func (r *Resolver) Resolve(c *Case) Outcome {
	c.State = StateResolving

	// Обе стороны удалили запись — расхождения нет
	if c.Local.Operation == models.OpDelete && c.Remote.Operation == models.OpDelete {
		return r.resolved(c, c.Remote, false, nil)
	}

	switch c.Strategy {
	case StrategyPreferLocal:
		return r.resolved(c, c.Local, true, nil)

	case StrategyPreferServer:
		return r.resolved(c, c.Remote, false, nil)

	case StrategyManualResolve:
		c.State = StateEscalated
		r.logger.Info("conflict escalated for manual resolution",
			"table", c.Local.TableName,
			"record_id", c.Local.RecordID)
		return Outcome{State: StateEscalated}

	case StrategyMergeData:
		return r.resolveMerge(c)

	case StrategyLastWriterWins:
		fallthrough
	default:
		return r.resolveLWW(c, nil)
	}
}

// resolveLWW применяет last-writer-wins: побеждает поздний timestamp,
// точное равенство детерминированно отдает победу серверу.
func (r *Resolver) resolveLWW(c *Case, warnings []models.SyncError) Outcome {
	if c.Local.NewerThan(c.Remote) {
		return r.resolved(c, c.Local, true, warnings)
	}
	// Remote новее либо timestamp равны — сервер побеждает
	return r.resolved(c, c.Remote, false, warnings)
}

// resolveMerge пытается слить payload пополям; при несливаемых payload
// деградирует до LWW с предупреждением UnmergeablePayload.
func (r *Resolver) resolveMerge(c *Case) Outcome {
	// Удаление не сливается с обновлением — решает LWW
	if c.Local.Operation == models.OpDelete || c.Remote.Operation == models.OpDelete {
		return r.resolveLWW(c, nil)
	}

	localWins := c.Local.NewerThan(c.Remote)

	merged, err := mergeFlat(c.Base, c.Local.Payload, c.Remote.Payload, localWins)
	if err != nil {
		r.logger.Warn("payload not mergeable, falling back to last-writer-wins",
			"table", c.Local.TableName,
			"record_id", c.Local.RecordID,
			"error", err)

		warning := models.SyncError{
			Kind:      models.KindUnmergeablePayload,
			TableName: c.Local.TableName,
			RecordID:  c.Local.RecordID,
			Err:       err,
		}
		return r.resolveLWW(c, []models.SyncError{warning})
	}

	winner := c.Local.Clone()
	winner.Operation = models.OpUpdate
	winner.Payload = merged
	if c.Remote.Timestamp.After(winner.Timestamp) {
		winner.Timestamp = c.Remote.Timestamp
	}

	rePush := !bytes.Equal(merged, c.Remote.Payload)
	return r.resolved(c, winner, rePush, nil)
}

// resolved собирает успешный исход
func (r *Resolver) resolved(c *Case, winner *models.ChangeRecord, rePush bool, warnings []models.SyncError) Outcome {
	c.State = StateResolved

	r.logger.Debug("conflict resolved",
		"table", winner.TableName,
		"record_id", winner.RecordID,
		"strategy", c.Strategy,
		"re_push", rePush)

	return Outcome{
		Winner:   winner.Clone(),
		RePush:   rePush,
		State:    StateResolved,
		Warnings: warnings,
	}
}
