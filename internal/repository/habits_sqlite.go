package repository

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type HabitsSQLiteRepository struct {
	db *sql.DB
}

func NewHabitsSQLiteRepo(db *sql.DB) *HabitsSQLiteRepository {
	return &HabitsSQLiteRepository{db: db}
}

func (hr *HabitsSQLiteRepository) Create(ctx context.Context, habit *entity.Habit) (int64, error) {
	res, err := hr.db.ExecContext(ctx, `INSERT INTO habits (name, description, created_date) VALUES (?, ?, ?);`,
		habit.Name,
		habit.Description,
		habit.CreatedDate.String(),
	)
	if err != nil {
		return 0, errors.New("creating habit db error: " + err.Error())
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.New("reading new habit id error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsSQLiteRepository) GetByID(ctx context.Context, id int64) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	row := hr.db.QueryRowContext(ctx, `SELECT name, description, created_date FROM habits WHERE id = ?;`, id)
	if err := row.Scan(&habit.Name, &habit.Description, &habit.CreatedDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsSQLiteRepository) List(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.db.QueryContext(ctx, `SELECT id, name, description, created_date FROM habits;`)
	if err != nil {
		return nil, errors.New("listing habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.Name, &h.Description, &h.CreatedDate)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsSQLiteRepository) ListWithStatus(ctx context.Context, date entity.Date) ([]entity.HabitStatus, error) {
	statuses := make([]entity.HabitStatus, 0)
	rows, err := hr.db.QueryContext(ctx, `SELECT h.id, h.name, h.description, COALESCE(e.completed, 0)
		FROM habits h LEFT JOIN habit_entries e ON e.habit_id = h.id AND e.date = ? ORDER BY h.id;`, date.String())
	if err != nil {
		return nil, errors.New("listing habit statuses error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.HabitStatus{}
		err = rows.Scan(&s.ID, &s.Name, &s.Description, &s.CompletedToday)
		if err != nil {
			return nil, errors.New("unmarshalling habit status error: " + err.Error())
		}
		statuses = append(statuses, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return statuses, nil
}

func (hr *HabitsSQLiteRepository) Delete(ctx context.Context, id int64) error {
	tx, err := hr.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New("starting deletion tx error: " + err.Error())
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM habit_entries WHERE habit_id = ?;`, id)
	if err != nil {
		tx.Rollback()
		return errors.New("error deleting habit entries: " + err.Error())
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = ?;`, id)
	if err != nil {
		tx.Rollback()
		return errors.New("error deleting habit: " + err.Error())
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return errors.New("reading deletion result error: " + err.Error())
	}
	if affected == 0 {
		tx.Rollback()
		return errorvalues.ErrHabitNotFound
	}
	if err = tx.Commit(); err != nil {
		return errors.New("committing deletion tx error: " + err.Error())
	}
	return nil
}
