package errorvalues

import "errors"

var (
	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrEntryNotFound = errors.New("entry doesn't exist")
	ErrValidation    = errors.New("validation failed")
)
