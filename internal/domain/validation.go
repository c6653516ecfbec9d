package domain

import (
	"sort"
	"strings"
)

// FieldErrors maps a wire field name to its validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Merge copies every message of other into f.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		f[field] = append(f[field], msgs...)
	}
}

// Err returns nil when f is empty and a *ValidationError otherwise.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ValidationError is returned for input rejected before it reaches storage.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewFieldError is a shortcut for a single-field ValidationError.
func NewFieldError(field, msg string) error {
	f := FieldErrors{}
	f.Add(field, msg)
	return f.Err()
}
