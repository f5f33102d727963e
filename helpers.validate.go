package main

import (
	"strconv"
	"strings"
)

// MaxFieldLength bounds title and author inputs.
const MaxFieldLength = 150

// Validator turns trimmed raw input strings into typed, constrained
// field values. Each method fails with a *ValidationError describing
// the field and the reason, never with anything else.
type Validator struct {
	clock Clocker
}

// NewValidator provides a validator bound to a clock. The clock sets
// the upper bound of acceptable publication years.
func NewValidator(clock Clocker) *Validator {
	return &Validator{clock: clock}
}

// Title validates a book title: non-empty after trimming, bounded length.
func (v *Validator) Title(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(title) > MaxFieldLength {
		return "", &ValidationError{Field: "title", Reason: "must not exceed " + strconv.Itoa(MaxFieldLength) + " characters"}
	}
	return title, nil
}

// Author validates an author name with the same grammar as titles.
func (v *Validator) Author(raw string) (string, error) {
	author := strings.TrimSpace(raw)
	if author == "" {
		return "", &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if len(author) > MaxFieldLength {
		return "", &ValidationError{Field: "author", Reason: "must not exceed " + strconv.Itoa(MaxFieldLength) + " characters"}
	}
	return author, nil
}

// Year validates a publication year: a positive integer no later than
// the current year.
func (v *Validator) Year(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: "year", Reason: "must be a number"}
	}
	if year <= 0 {
		return 0, &ValidationError{Field: "year", Reason: "must be positive"}
	}
	if current := v.clock.Now().Year(); year > current {
		return 0, &ValidationError{Field: "year", Reason: "must not be later than " + strconv.Itoa(current)}
	}
	return year, nil
}

// ID validates a book identifier: a positive base-10 integer.
func (v *Validator) ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "book id", Reason: "must be a number"}
	}
	if id <= 0 {
		return 0, &ValidationError{Field: "book id", Reason: "must be positive"}
	}
	return id, nil
}

// Status validates a status label against the fixed set.
func (v *Validator) Status(raw string) (BookStatus, error) {
	status := BookStatus(strings.TrimSpace(raw))
	if !IsValidStatus(status) {
		return "", &ValidationError{Field: "status", Reason: "must be one of the listed statuses"}
	}
	return status, nil
}
