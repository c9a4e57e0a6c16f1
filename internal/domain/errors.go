package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no domain matches a normalized name.
	ErrNotFound = errors.New("domain not found")
	// ErrDuplicateDomain is returned by stores when inserting a domain name
	// that already exists. Callers re-read the existing row.
	ErrDuplicateDomain = errors.New("domain already exists")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field-level problem found in one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// orNil returns e as an error only when it holds field errors.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
