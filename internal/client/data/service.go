// Package data реализует CRUD доменных сущностей на клиенте.
// Каждая локальная мутация проходит двумя шагами: снимок сущности
// в LocalDataStore, затем запись в журнал изменений. Журнал —
// источник правды для синхронизации, снимок — для чтения.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/validation"
)

// Store расширяет LocalDataStore перечислением таблицы.
// Перечисление нужно только CRUD слою, ядро синхронизации
// обходится узким интерфейсом.
type Store interface {
	storage.LocalDataStore
	ListEntities(ctx context.Context, tableName string) (map[string][]byte, error)
}

// Service handles client-side habit data operations
type Service struct {
	store     Store
	changelog storage.ChangeLog
	deviceID  string
}

// NewService creates a new data service
func NewService(store Store, changelog storage.ChangeLog, deviceID string) *Service {
	return &Service{
		store:     store,
		changelog: changelog,
		deviceID:  deviceID,
	}
}

// AddHabit создает новую привычку
func (s *Service) AddHabit(ctx context.Context, name, schedule string) (*models.Habit, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, fmt.Errorf("invalid habit name: %w", err)
	}

	now := time.Now().UTC()
	habit := &models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Schedule:  schedule,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.write(ctx, models.TableHabits, habit.ID, habit, models.OpInsert); err != nil {
		return nil, err
	}

	return habit, nil
}

// GetHabit возвращает привычку по идентификатору
func (s *Service) GetHabit(ctx context.Context, habitID string) (*models.Habit, error) {
	payload, err := s.store.ReadEntity(ctx, models.TableHabits, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to read habit: %w", err)
	}

	var habit models.Habit
	if err := json.Unmarshal(payload, &habit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal habit: %w", err)
	}

	return &habit, nil
}

// ListHabits возвращает все привычки, отсортированные по имени
func (s *Service) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	entities, err := s.store.ListEntities(ctx, models.TableHabits)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	habits := make([]*models.Habit, 0, len(entities))
	for _, payload := range entities {
		var habit models.Habit
		if err := json.Unmarshal(payload, &habit); err != nil {
			// Пропускаем поврежденные записи
			continue
		}
		habits = append(habits, &habit)
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].Name < habits[j].Name
	})

	return habits, nil
}

// FindHabitByName ищет привычку по точному имени
func (s *Service) FindHabitByName(ctx context.Context, name string) (*models.Habit, error) {
	habits, err := s.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	for _, habit := range habits {
		if habit.Name == name {
			return habit, nil
		}
	}

	return nil, storage.ErrEntityNotFound
}

// TrackHabit записывает выполнение привычки
func (s *Service) TrackHabit(ctx context.Context, habitID, note string) (*models.Session, error) {
	// Привычка должна существовать локально
	if _, err := s.GetHabit(ctx, habitID); err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Note:        note,
		CompletedAt: time.Now().UTC(),
		DeviceID:    s.deviceID,
	}

	if err := s.write(ctx, models.TableSessions, session.ID, session, models.OpInsert); err != nil {
		return nil, err
	}

	return session, nil
}

// ListSessions возвращает выполнения привычки, новые первыми.
// Пустой habitID возвращает выполнения всех привычек.
func (s *Service) ListSessions(ctx context.Context, habitID string) ([]*models.Session, error) {
	entities, err := s.store.ListEntities(ctx, models.TableSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(entities))
	for _, payload := range entities {
		var session models.Session
		if err := json.Unmarshal(payload, &session); err != nil {
			continue
		}
		if habitID != "" && session.HabitID != habitID {
			continue
		}
		sessions = append(sessions, &session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CompletedAt.After(sessions[j].CompletedAt)
	})

	return sessions, nil
}

// UpdateHabit сохраняет измененную привычку
func (s *Service) UpdateHabit(ctx context.Context, habit *models.Habit) error {
	habit.UpdatedAt = time.Now().UTC()
	return s.write(ctx, models.TableHabits, habit.ID, habit, models.OpUpdate)
}

// DeleteHabit удаляет привычку.
// Выполнения остаются: история не теряется при удалении привычки.
func (s *Service) DeleteHabit(ctx context.Context, habitID string) error {
	if err := s.store.DeleteEntity(ctx, models.TableHabits, habitID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	if _, err := s.changelog.Append(ctx, models.TableHabits, habitID, models.OpDelete, nil, s.deviceID); err != nil {
		return fmt.Errorf("failed to log delete: %w", err)
	}

	return nil
}

// write сериализует сущность, пишет снимок и логирует изменение
func (s *Service) write(ctx context.Context, tableName, recordID string, entity any, op models.Operation) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if err := s.store.WriteEntity(ctx, tableName, recordID, payload); err != nil {
		return fmt.Errorf("failed to write entity: %w", err)
	}

	if _, err := s.changelog.Append(ctx, tableName, recordID, op, payload, s.deviceID); err != nil {
		return fmt.Errorf("failed to log change: %w", err)
	}

	return nil
}
