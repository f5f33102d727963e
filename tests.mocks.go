package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockBookStorage struct {
	InsertFunc func(ctx context.Context, book Book) (Book, error)
	GetOneFunc func(ctx context.Context, id int64) (Book, error)
	DeleteFunc func(ctx context.Context, id int64) error
	UpdateFunc func(ctx context.Context, id int64, book Book) (Book, error)
	GetAllFunc func(ctx context.Context) ([]Book, error)
}

// Insert mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Insert(ctx context.Context, book Book) (Book, error) {
	return m.InsertFunc(ctx, book)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id int64) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

// Update mocks the behavior of updating a book by the repository.
func (m *MockBookStorage) Update(ctx context.Context, id int64, book Book) (Book, error) {
	return m.UpdateFunc(ctx, id, book)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockJournal records every journal call for inspection.
type MockJournal struct {
	mu      sync.Mutex
	Entries []JournalEntry
	Err     error
}

// Record stores the given mutation or fails with the configured error.
func (mj *MockJournal) Record(_ context.Context, action string, book Book) error {
	if mj.Err != nil {
		return mj.Err
	}
	mj.mu.Lock()
	defer mj.mu.Unlock()
	mj.Entries = append(mj.Entries, JournalEntry{Action: action, Book: book})
	return nil
}

// RecordingConsole implements Consoler by keeping the rendered text.
// Colors are cosmetic, so tests assert on the text alone.
type RecordingConsole struct {
	b strings.Builder
}

func (rc *RecordingConsole) Heading(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format+"\n", a...)
}

func (rc *RecordingConsole) Option(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format+"\n", a...)
}

func (rc *RecordingConsole) Alert(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format+"\n", a...)
}

func (rc *RecordingConsole) Prompt(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format, a...)
}

func (rc *RecordingConsole) Item(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format+"\n", a...)
}

func (rc *RecordingConsole) Farewell(format string, a ...interface{}) {
	fmt.Fprintf(&rc.b, format+"\n", a...)
}

// Clear marks the wipe instead of destroying the recorded transcript.
func (rc *RecordingConsole) Clear() {
	rc.b.WriteString("[clear]\n")
}

// Output returns everything rendered so far.
func (rc *RecordingConsole) Output() string {
	return rc.b.String()
}

// Reset drops the transcript recorded so far.
func (rc *RecordingConsole) Reset() {
	rc.b.Reset()
}
