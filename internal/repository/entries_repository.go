package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/pkg/cleanup"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	if err = ensurePGSchema(pool); err != nil {
		log.Fatal("error ensuring schema for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing entries pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Toggle(ctx context.Context, habitID int64, date entity.Date) (bool, error) {
	var completed bool
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO habit_entries (habit_id, date, completed) VALUES ($1, $2, TRUE)
		ON CONFLICT (habit_id, date) DO UPDATE SET completed = NOT habit_entries.completed
		RETURNING completed;`,
		habitID,
		date,
	)
	if err := row.Scan(&completed); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return false, errorvalues.ErrHabitNotFound
			}
		}
		return false, errors.New("toggling entry error: " + err.Error())
	}
	return completed, nil
}

func (er *EntriesRepository) RecentByHabit(ctx context.Context, habitID int64, limit int) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, habit_id, date, completed, created_at FROM habit_entries
		WHERE habit_id = $1 ORDER BY date DESC LIMIT $2;`,
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
		err = rows.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return result, nil
}
