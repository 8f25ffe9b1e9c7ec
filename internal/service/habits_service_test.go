package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/internal/service"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type mockState int

const (
	stateSuccess = iota
	stateDBError
	stateHabitNotFoundError
)

// Variables for tests
var (
	habitID   = int64(7)
	testHabit = entity.Habit{
		ID:          habitID,
		Name:        "test_habit",
		Description: "test_description",
		CreatedDate: entity.NewDate(2024, time.March, 10),
	}
	testStatus = entity.HabitStatus{
		ID:             habitID,
		Name:           "test_habit",
		Description:    "test_description",
		CompletedToday: true,
	}
)

type habitsRepoMock struct {
	state mockState
}

func (hrmock *habitsRepoMock) Create(ctx context.Context, habit *entity.Habit) (int64, error) {
	switch hrmock.state {
	case stateDBError:
		return 0, errors.New("db error")
	default:
		return habitID, nil
	}
}

func (hrmock *habitsRepoMock) GetByID(ctx context.Context, id int64) (*entity.Habit, error) {
	switch hrmock.state {
	case stateHabitNotFoundError:
		return nil, errorvalues.ErrHabitNotFound
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return &testHabit, nil
	}
}

func (hrmock *habitsRepoMock) List(ctx context.Context) ([]*entity.Habit, error) {
	switch hrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return []*entity.Habit{&testHabit}, nil
	}
}

func (hrmock *habitsRepoMock) ListWithStatus(ctx context.Context, date entity.Date) ([]entity.HabitStatus, error) {
	switch hrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return []entity.HabitStatus{testStatus}, nil
	}
}

func (hrmock *habitsRepoMock) Delete(ctx context.Context, id int64) error {
	switch hrmock.state {
	case stateDBError:
		return errors.New("db error")
	case stateHabitNotFoundError:
		return errorvalues.ErrHabitNotFound
	default:
		return nil
	}
}

func TestCreateHabit(t *testing.T) {
	mock := habitsRepoMock{}
	serv := service.NewHabitsService(&mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.state = stateSuccess
		habit, err := serv.CreateHabit(ctx, &service.CreateHabitRequest{
			Name:        "test_habit",
			Description: "test_description",
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *habit)
	})
	t.Run("description optional", func(t *testing.T) {
		mock.state = stateSuccess
		_, err := serv.CreateHabit(ctx, &service.CreateHabitRequest{Name: "test_habit"})
		assert.NoError(t, err)
	})
	t.Run("empty name rejected", func(t *testing.T) {
		mock.state = stateSuccess
		_, err := serv.CreateHabit(ctx, &service.CreateHabitRequest{Name: ""})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("blank name rejected", func(t *testing.T) {
		mock.state = stateSuccess
		_, err := serv.CreateHabit(ctx, &service.CreateHabitRequest{Name: "   "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := serv.CreateHabit(ctx, &service.CreateHabitRequest{Name: "test_habit"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestListHabits(t *testing.T) {
	mock := habitsRepoMock{}
	serv := service.NewHabitsService(&mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.state = stateSuccess
		habits, err := serv.ListHabits(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(habits))
		assert.Equal(t, testHabit, *habits[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := serv.ListHabits(ctx)
		assert.Error(t, err)
	})
}

func TestDeleteHabit(t *testing.T) {
	mock := habitsRepoMock{}
	serv := service.NewHabitsService(&mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.state = stateSuccess
		assert.NoError(t, serv.DeleteHabit(ctx, habitID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateHabitNotFoundError
		assert.ErrorIs(t, serv.DeleteHabit(ctx, habitID), errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		assert.Error(t, serv.DeleteHabit(ctx, habitID))
	})
}
