package main

import (
	"errors"
	"fmt"
)

// Sentinel domain errors surfaced by the catalogue service.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrInvalidStatus  = errors.New("invalid book status")
	ErrEmptyCatalogue = errors.New("the catalogue is empty")
	ErrNoMatch        = errors.New("no book matched the search")
)

type missingFieldError string

func (m missingFieldError) Error() string {
	return string(m) + " is required"
}

// ValidationError means a raw input string could not be turned into a
// typed field value. It is always a user-input problem, never a defect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DomainError means a well-formed request the catalogue could not
// satisfy. It wraps one of the sentinel errors above or a backend failure.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// IsUserFacing tells whether an error belongs to one of the two kinds
// the menu layer absorbs by design. Anything else is a programming
// defect and gets logged at error level before being absorbed anyway.
func IsUserFacing(err error) bool {
	var ve *ValidationError
	var de *DomainError
	return errors.As(err, &ve) || errors.As(err, &de)
}
