package service

import (
	"context"

	"github.com/hopfield/habitrabbit/pkg/entity"
)

type CreateHabitRequest struct {
	Name        string `validate:"required,notblank,max=200"`
	Description string `validate:"max=1000"`
}

type HabitsServiceI interface {
	// Validates the request and persists a new habit dated today. Gives back the stored row
	CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error)
	// Lists all habits in natural storage order
	ListHabits(ctx context.Context) ([]*entity.Habit, error)
	// Deletes the habit and all of its entries. Fails with ErrHabitNotFound on unknown id
	DeleteHabit(ctx context.Context, id int64) error
}

type EntriesServiceI interface {
	// Flips the completion entry for (habitID, date), creating it as completed when
	// absent. Returns the resulting state. Fails with ErrHabitNotFound on unknown id
	ToggleCompletion(ctx context.Context, habitID int64, date entity.Date) (bool, error)
	// Reports every habit with its completion state for today, defaulting to false
	TodayStatus(ctx context.Context) ([]entity.HabitStatus, error)
	// Provides up to the 30 most recent entries of the habit, date descending.
	// Fails with ErrHabitNotFound on unknown id
	GetHistory(ctx context.Context, habitID int64) ([]entity.HabitEntry, error)
}
