package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/hopfield/habitrabbit/internal/error_values"
	"github.com/hopfield/habitrabbit/internal/repository"
	"github.com/hopfield/habitrabbit/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, validationErrors.Error())
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	h := entity.Habit{
		Name:        req.Name,
		Description: req.Description,
		CreatedDate: entity.Today(),
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) ListHabits(ctx context.Context) ([]*entity.Habit, error) {
	habits, err := hs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, id int64) error {
	err := hs.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
