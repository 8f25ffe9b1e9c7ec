package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type EntriesSQLiteRepository struct {
	db *sql.DB
}

func NewEntriesSQLiteRepo(db *sql.DB) *EntriesSQLiteRepository {
	return &EntriesSQLiteRepository{db: db}
}

func (er *EntriesSQLiteRepository) Toggle(ctx context.Context, habitID int64, date entity.Date) (bool, error) {
	var completed bool
	row := er.db.QueryRowContext(
		ctx,
		`INSERT INTO habit_entries (habit_id, date, completed, created_at) VALUES (?, ?, 1, ?)
		ON CONFLICT (habit_id, date) DO UPDATE SET completed = NOT completed
		RETURNING completed;`,
		habitID,
		date.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err := row.Scan(&completed); err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return false, errorvalues.ErrHabitNotFound
		}
		return false, errors.New("toggling entry error: " + err.Error())
	}
	return completed, nil
}

func (er *EntriesSQLiteRepository) RecentByHabit(ctx context.Context, habitID int64, limit int) ([]entity.HabitEntry, error) {
	rows, err := er.db.QueryContext(
		ctx,
		`SELECT id, habit_id, date, completed, created_at FROM habit_entries
		WHERE habit_id = ? ORDER BY date DESC LIMIT ?;`,
		habitID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent entries error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitEntry, 0, limit)
	for rows.Next() {
		e := entity.HabitEntry{}
		var createdAt string
		err = rows.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed, &createdAt)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, errors.New("parsing entry created_at error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}
