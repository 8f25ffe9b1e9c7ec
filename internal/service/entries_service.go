package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/internal/repository"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

// HistoryLimit bounds how many entries a history request returns.
const HistoryLimit = 30

type EntriesService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
}

func NewEntriesService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI) *EntriesService {
	if habitsRepo == nil || entriesRepo == nil {
		log.Fatal("on entries service provided nil repos")
	}
	return &EntriesService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
	}
}

func (serv *EntriesService) ToggleCompletion(ctx context.Context, habitID int64, date entity.Date) (bool, error) {
	_, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	completed, err := serv.entriesRepo.Toggle(ctx, habitID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return false, err
		}
		return false, errors.New("repository error: " + err.Error())
	}
	return completed, nil
}

func (serv *EntriesService) TodayStatus(ctx context.Context) ([]entity.HabitStatus, error) {
	statuses, err := serv.habitsRepo.ListWithStatus(ctx, entity.Today())
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return statuses, nil
}

func (serv *EntriesService) GetHistory(ctx context.Context, habitID int64) ([]entity.HabitEntry, error) {
	_, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	entries, err := serv.entriesRepo.RecentByHabit(ctx, habitID, HistoryLimit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
