package entity

import (
	"time"
)

type Habit struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedDate Date   `json:"created_date"`
}

type HabitEntry struct {
	ID        int64     `json:"id"`
	HabitID   int64     `json:"habit_id"`
	Date      Date      `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitStatus is a habit joined with its completion entry for a single day.
// Habits without an entry for that day report CompletedToday = false.
type HabitStatus struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CompletedToday bool   `json:"completed_today"`
}
