package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

// runAdd создает новую привычку
func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: habitsync add NAME [SCHEDULE]")
	}

	name := args[0]
	schedule := "daily"
	if len(args) > 1 {
		schedule = args[1]
	}

	habit, err := c.dataService.AddHabit(ctx, name, schedule)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Habit added: %s (%s)\n", habit.Name, habit.Schedule)
	c.io.Printf("ID: %s\n", habit.ID)
	return nil
}

// runTrack записывает выполнение привычки
func (c *Cli) runTrack(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: habitsync track HABIT [NOTE]")
	}

	habit, err := c.findHabit(ctx, args[0])
	if err != nil {
		return err
	}

	note := ""
	if len(args) > 1 {
		note = args[1]
	}

	session, err := c.dataService.TrackHabit(ctx, habit.ID, note)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Tracked: %s at %s\n", habit.Name, session.CompletedAt.Local().Format("15:04"))
	return nil
}

// runList показывает привычки или выполнения одной привычки
func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return c.listSessions(ctx, args[0])
	}
	return c.listHabits(ctx)
}

func (c *Cli) listHabits(ctx context.Context) error {
	habits, err := c.dataService.ListHabits(ctx)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		c.io.Println("No habits yet. Add one with 'habitsync add NAME'.")
		return nil
	}

	sessions, err := c.dataService.ListSessions(ctx, "")
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, session := range sessions {
		counts[session.HabitID]++
	}

	c.io.Println("=== Habits ===")
	for _, habit := range habits {
		c.io.Printf("%-30s %-10s %d completions\n", habit.Name, habit.Schedule, counts[habit.ID])
	}
	return nil
}

func (c *Cli) listSessions(ctx context.Context, ref string) error {
	habit, err := c.findHabit(ctx, ref)
	if err != nil {
		return err
	}

	sessions, err := c.dataService.ListSessions(ctx, habit.ID)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", habit.Name)
	if len(sessions) == 0 {
		c.io.Println("No completions yet.")
		return nil
	}

	for _, session := range sessions {
		line := session.CompletedAt.Local().Format(time.RFC822)
		if session.Note != "" {
			line += "  " + session.Note
		}
		c.io.Println(line)
	}
	return nil
}

// runDelete удаляет привычку
func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: habitsync delete HABIT")
	}

	habit, err := c.findHabit(ctx, args[0])
	if err != nil {
		return err
	}

	if err := c.dataService.DeleteHabit(ctx, habit.ID); err != nil {
		return err
	}

	c.io.Printf("✓ Habit deleted: %s\n", habit.Name)
	return nil
}

// findHabit ищет привычку по имени, затем по идентификатору
func (c *Cli) findHabit(ctx context.Context, ref string) (*models.Habit, error) {
	habit, err := c.dataService.FindHabitByName(ctx, ref)
	if err == nil {
		return habit, nil
	}
	if !errors.Is(err, storage.ErrEntityNotFound) {
		return nil, err
	}

	habit, err = c.dataService.GetHabit(ctx, ref)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			return nil, fmt.Errorf("habit not found: %s", ref)
		}
		return nil, err
	}
	return habit, nil
}
