package api_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopfield/habitrabbit/internal/api"
	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/internal/service"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type mockState int

const (
	stateSuccess = iota
	stateServiceError
	stateNotFound
	stateValidationError
)

var testHabit = entity.Habit{
	ID:          7,
	Name:        "Drink water",
	Description: "eight glasses",
	CreatedDate: entity.NewDate(2024, time.March, 10),
}

type HabitsServiceMock struct {
	state mockState
}

func (hsmock *HabitsServiceMock) CreateHabit(ctx context.Context, req *service.CreateHabitRequest) (*entity.Habit, error) {
	switch hsmock.state {
	case stateValidationError:
		return nil, fmt.Errorf("%w: name is required", errorvalues.ErrValidation)
	case stateServiceError:
		return nil, errors.New("mocked error")
	default:
		return &testHabit, nil
	}
}

func (hsmock *HabitsServiceMock) ListHabits(ctx context.Context) ([]*entity.Habit, error) {
	switch hsmock.state {
	case stateServiceError:
		return nil, errors.New("mocked error")
	default:
		return []*entity.Habit{&testHabit}, nil
	}
}

func (hsmock *HabitsServiceMock) DeleteHabit(ctx context.Context, id int64) error {
	switch hsmock.state {
	case stateNotFound:
		return errorvalues.ErrHabitNotFound
	case stateServiceError:
		return errors.New("mocked error")
	default:
		return nil
	}
}

// EntriesServiceMock flips completed per toggle like the real upsert.
type EntriesServiceMock struct {
	state     mockState
	completed bool
}

func (esmock *EntriesServiceMock) ToggleCompletion(ctx context.Context, habitID int64, date entity.Date) (bool, error) {
	switch esmock.state {
	case stateNotFound:
		return false, errorvalues.ErrHabitNotFound
	case stateServiceError:
		return false, errors.New("mocked error")
	default:
		esmock.completed = !esmock.completed
		return esmock.completed, nil
	}
}

func (esmock *EntriesServiceMock) TodayStatus(ctx context.Context) ([]entity.HabitStatus, error) {
	switch esmock.state {
	case stateServiceError:
		return nil, errors.New("mocked error")
	default:
		return []entity.HabitStatus{
			{ID: testHabit.ID, Name: testHabit.Name, Description: testHabit.Description, CompletedToday: esmock.completed},
		}, nil
	}
}

func (esmock *EntriesServiceMock) GetHistory(ctx context.Context, habitID int64) ([]entity.HabitEntry, error) {
	switch esmock.state {
	case stateNotFound:
		return nil, errorvalues.ErrHabitNotFound
	case stateServiceError:
		return nil, errors.New("mocked error")
	default:
		return []entity.HabitEntry{
			{ID: 1, HabitID: habitID, Date: entity.NewDate(2024, time.March, 10), Completed: true},
		}, nil
	}
}

func newTestServer() (*api.Server, *HabitsServiceMock, *EntriesServiceMock) {
	habitsMock := &HabitsServiceMock{}
	entriesMock := &EntriesServiceMock{}
	serv := api.New(&api.ServicesList{
		HabitsService:  habitsMock,
		EntriesService: entriesMock,
	})
	return serv, habitsMock, entriesMock
}

func TestCreateHabitHandler(t *testing.T) {
	serv, habitsMock, _ := newTestServer()
	body, err := sonic.ConfigDefault.Marshal(api.CreateHabitRequest{
		Name:        testHabit.Name,
		Description: testHabit.Description,
	})
	require.NoError(t, err)
	t.Run("created", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/habits/", bytes.NewReader(body))
		habitsMock.state = stateSuccess
		serv.CreateHabit(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		var habit entity.Habit
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&habit))
		assert.Equal(t, testHabit, habit)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/habits/", bytes.NewReader([]byte("{")))
		habitsMock.state = stateSuccess
		serv.CreateHabit(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("validation error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/habits/", bytes.NewReader(body))
		habitsMock.state = stateValidationError
		serv.CreateHabit(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/habits/", bytes.NewReader(body))
		habitsMock.state = stateServiceError
		serv.CreateHabit(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetHabitsHandler(t *testing.T) {
	serv, habitsMock, _ := newTestServer()
	t.Run("success", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
		habitsMock.state = stateSuccess
		serv.GetHabits(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var habits []entity.Habit
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&habits))
		require.Equal(t, 1, len(habits))
		assert.Equal(t, testHabit, habits[0])
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/habits/", nil)
		habitsMock.state = stateServiceError
		serv.GetHabits(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetTodayStatusHandler(t *testing.T) {
	serv, _, entriesMock := newTestServer()
	t.Run("success", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/habits/today", nil)
		entriesMock.state = stateSuccess
		serv.GetTodayStatus(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var statuses []entity.HabitStatus
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&statuses))
		require.Equal(t, 1, len(statuses))
		assert.False(t, statuses[0].CompletedToday)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/habits/today", nil)
		entriesMock.state = stateServiceError
		serv.GetTodayStatus(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestToggleCompletionHandler(t *testing.T) {
	serv, _, entriesMock := newTestServer()
	toggleReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/habits/"+id+"/complete", nil)
		req.SetPathValue("id", id)
		return req
	}
	t.Run("toggle cycles through responses", func(t *testing.T) {
		entriesMock.state = stateSuccess
		rr := httptest.NewRecorder()
		serv.ToggleCompletion(rr, toggleReq("7"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result api.ToggleResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		assert.True(t, result.Completed)
		assert.Equal(t, "Habit completed for today", result.Message)

		rr = httptest.NewRecorder()
		serv.ToggleCompletion(rr, toggleReq("7"))
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		assert.False(t, result.Completed)
		assert.Equal(t, "Habit uncompleted for today", result.Message)
	})
	t.Run("invalid id", func(t *testing.T) {
		entriesMock.state = stateSuccess
		rr := httptest.NewRecorder()
		serv.ToggleCompletion(rr, toggleReq("abc"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("not found", func(t *testing.T) {
		entriesMock.state = stateNotFound
		rr := httptest.NewRecorder()
		serv.ToggleCompletion(rr, toggleReq("999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		entriesMock.state = stateServiceError
		rr := httptest.NewRecorder()
		serv.ToggleCompletion(rr, toggleReq("7"))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestDeleteHabitHandler(t *testing.T) {
	serv, habitsMock, _ := newTestServer()
	deleteReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/habits/"+id, nil)
		req.SetPathValue("id", id)
		return req
	}
	t.Run("deleted", func(t *testing.T) {
		habitsMock.state = stateSuccess
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, deleteReq("7"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		habitsMock.state = stateSuccess
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, deleteReq("abc"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("not found", func(t *testing.T) {
		habitsMock.state = stateNotFound
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, deleteReq("999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		habitsMock.state = stateServiceError
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, deleteReq("7"))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetHistoryHandler(t *testing.T) {
	serv, _, entriesMock := newTestServer()
	historyReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/habits/"+id+"/history", nil)
		req.SetPathValue("id", id)
		return req
	}
	t.Run("success", func(t *testing.T) {
		entriesMock.state = stateSuccess
		rr := httptest.NewRecorder()
		serv.GetHistory(rr, historyReq("7"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var entries []entity.HabitEntry
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&entries))
		require.Equal(t, 1, len(entries))
		assert.Equal(t, int64(7), entries[0].HabitID)
	})
	t.Run("not found", func(t *testing.T) {
		entriesMock.state = stateNotFound
		rr := httptest.NewRecorder()
		serv.GetHistory(rr, historyReq("999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		entriesMock.state = stateServiceError
		rr := httptest.NewRecorder()
		serv.GetHistory(rr, historyReq("7"))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

// Exercises the routed mux end to end, covering the toggle scenario through
// real paths.
func TestRoutedToggleScenario(t *testing.T) {
	serv, habitsMock, entriesMock := newTestServer()
	habitsMock.state = stateSuccess
	entriesMock.state = stateSuccess
	ts := httptest.NewServer(serv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/habits/today")
	require.NoError(t, err)
	var statuses []entity.HabitStatus
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&statuses))
	resp.Body.Close()
	require.Equal(t, 1, len(statuses))
	assert.False(t, statuses[0].CompletedToday)

	resp, err = http.Post(ts.URL+"/habits/7/complete", "application/json", nil)
	require.NoError(t, err)
	var result api.ToggleResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()
	assert.True(t, result.Completed)

	resp, err = http.Get(ts.URL + "/habits/today")
	require.NoError(t, err)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&statuses))
	resp.Body.Close()
	assert.True(t, statuses[0].CompletedToday)

	resp, err = http.Post(ts.URL+"/habits/7/complete", "application/json", nil)
	require.NoError(t, err)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()
	assert.False(t, result.Completed)
}
