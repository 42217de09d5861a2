package models

import "time"

// Логические таблицы доменных данных
const (
	TableHabits   = "habits"
	TableSessions = "sessions"
)

// Habit представляет отслеживаемую привычку
type Habit struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Schedule  string    `json:"schedule,omitempty"` // например "daily", "weekly"
	Archived  bool      `json:"archived"`
}

// Session представляет одно выполнение привычки
type Session struct {
	CompletedAt time.Time `json:"completed_at"`
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	Note        string    `json:"note,omitempty"`
	DeviceID    string    `json:"device_id"` // устройство, на котором записано выполнение
}
