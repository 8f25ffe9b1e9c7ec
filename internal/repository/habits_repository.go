package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/pkg/cleanup"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	if err = ensurePGSchema(pool); err != nil {
		log.Fatal("error ensuring schema for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing habits pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (int64, error) {
	var id int64
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (name, description, created_date) VALUES ($1, $2, $3) RETURNING id;`,
		habit.Name,
		habit.Description,
		habit.CreatedDate,
	)
	if err := row.Scan(&id); err != nil {
		return 0, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id int64) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	row := hr.conn.QueryRow(ctx, `SELECT name, description, created_date FROM habits WHERE id = $1;`, id)
	if err := row.Scan(&habit.Name, &habit.Description, &habit.CreatedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) List(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, name, description, created_date FROM habits;`)
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

func (hr *HabitsRepository) ListWithStatus(ctx context.Context, date entity.Date) ([]entity.HabitStatus, error) {
	statuses := make([]entity.HabitStatus, 0)
	rows, err := hr.conn.Query(ctx, `SELECT h.id, h.name, h.description, COALESCE(e.completed, FALSE)
		FROM habits h LEFT JOIN habit_entries e ON e.habit_id = h.id AND e.date = $1 ORDER BY h.id;`, date)
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

func (hr *HabitsRepository) Delete(ctx context.Context, id int64) error {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting deletion tx error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM habit_entries WHERE habit_id = $1;`, id)
	if err != nil {
		tx.Rollback(ctx)
		return errors.New("error deleting habit entries: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		tx.Rollback(ctx)
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return errorvalues.ErrHabitNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing deletion tx error: " + err.Error())
	}
	return nil
}
