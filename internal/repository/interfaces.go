package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hopfield/habitrabbit/pkg/entity"
)

type HabitsRepositoryI interface {
	// Creates new habit. Name, Description and CreatedDate are required; returns assigned id
	Create(ctx context.Context, habit *entity.Habit) (int64, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id int64) (*entity.Habit, error)
	// Lists every habit in natural storage order
	List(ctx context.Context) ([]*entity.Habit, error)
	// Lists every habit joined with its entry for date; habits without one report completed = false
	ListWithStatus(ctx context.Context, date entity.Date) ([]entity.HabitStatus, error)
	// Deletes habit with id and all of its entries as one transaction
	Delete(ctx context.Context, id int64) error
}

type EntriesRepositoryI interface {
	// Flips the entry for (habitID, date), creating it as completed when absent.
	// Single atomic upsert; returns the resulting completed value
	Toggle(ctx context.Context, habitID int64, date entity.Date) (bool, error)
	// Provides up to limit most recent entries of habitID, date descending
	RecentByHabit(ctx context.Context, habitID int64, limit int) ([]entity.HabitEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
