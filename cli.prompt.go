package main

import (
	"context"
	"fmt"
	"strings"
)

// Shared input-collection helpers used by the edit-workflow states:
// print a field prompt, read one line, trim it, validate it. Each
// returns the typed value or the validation failure; a read failure
// (interrupt mid-prompt) comes back as-is and the caller stands still.

func (sh *Shell) promptLine(ctx context.Context, label string) (string, error) {
	sh.console.Prompt("Enter %s: ", label)
	line, err := sh.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	sh.console.Clear()
	return strings.TrimSpace(line), nil
}

func (sh *Shell) promptTitle(ctx context.Context) (string, error) {
	raw, err := sh.promptLine(ctx, "title")
	if err != nil {
		return "", err
	}
	return sh.validator.Title(raw)
}

func (sh *Shell) promptAuthor(ctx context.Context) (string, error) {
	raw, err := sh.promptLine(ctx, "author")
	if err != nil {
		return "", err
	}
	return sh.validator.Author(raw)
}

func (sh *Shell) promptYear(ctx context.Context) (int, error) {
	raw, err := sh.promptLine(ctx, "year")
	if err != nil {
		return 0, err
	}
	return sh.validator.Year(raw)
}

func (sh *Shell) promptID(ctx context.Context) (int64, error) {
	raw, err := sh.promptLine(ctx, "book ID")
	if err != nil {
		return 0, err
	}
	return sh.validator.ID(raw)
}

// unsetField marks a draft field that holds no value yet.
const unsetField = "not set"

func fmtStringField(v *string) string {
	if v == nil {
		return unsetField
	}
	return *v
}

func fmtIntField(v *int) string {
	if v == nil {
		return unsetField
	}
	return fmt.Sprintf("%d", *v)
}

func fmtIDField(v *int64) string {
	if v == nil {
		return unsetField
	}
	return fmt.Sprintf("%d", *v)
}

func fmtStatusField(v *BookStatus) string {
	if v == nil {
		return unsetField
	}
	return string(*v)
}
