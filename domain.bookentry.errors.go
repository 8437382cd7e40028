package main

import (
	"errors"
)

// Construction failures come in two kinds only. Every error returned
// by NewBookEntry and NewBookEntryFromFields matches exactly one of
// them with errors.Is.
var (
	ErrNilArgument     = errors.New("nil argument")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrEntryImmutable = errors.New("book entry already constructed")
	ErrDuplicateEntry = errors.New("book entry already in catalog")
	ErrEntryNotFound  = errors.New("book entry not found")
	ErrInvalidEntryID = errors.New("invalid book entry id")
	ErrUnknownFormat  = errors.New("unknown output format")
)

type missingFieldError string

func (m missingFieldError) Error() string {
	return string(m) + " is required"
}

func (m missingFieldError) Is(target error) bool {
	return target == ErrNilArgument
}

// Field returns the name of the missing field.
func (m missingFieldError) Field() string {
	return string(m)
}

// invalidFieldError reports a present field which violates its constraint.
type invalidFieldError struct {
	field  string
	reason string
}

func (e *invalidFieldError) Error() string {
	return e.field + " " + e.reason
}

func (e *invalidFieldError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Field returns the name of the offending field.
func (e *invalidFieldError) Field() string {
	return e.field
}

// FieldOf extracts the field name carried by a construction error.
// It returns an empty string for any other error.
func FieldOf(err error) string {
	var f interface{ Field() string }
	if errors.As(err, &f) {
		return f.Field()
	}
	return ""
}
