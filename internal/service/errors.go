package service

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Callers match with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

var (
	ErrTrainingNotFound     = fmt.Errorf("training %w", ErrNotFound)
	ErrTrainingAccessDenied = fmt.Errorf("training belongs to another coach: %w", ErrForbidden)
	ErrAthleteNotFound      = fmt.Errorf("athlete %w", ErrNotFound)
	ErrAthleteNotManaged    = fmt.Errorf("athlete is not managed by this coach: %w", ErrForbidden)
	ErrScheduleAccessDenied = fmt.Errorf("scheduled training belongs to another coach: %w", ErrForbidden)
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// backendErr marks a failed document store or blob store call.
func backendErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
}
