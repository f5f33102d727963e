package main

import (
	"context"
	"fmt"
)

// Book represents a catalogue record. The ID is assigned by the
// storage backend on insertion and never chosen by the user.
type Book struct {
	ID        int64      `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Author    string     `json:"author" yaml:"author"`
	Year      int        `json:"year" yaml:"year"`
	Status    BookStatus `json:"status" yaml:"status"`
	CreatedAt string     `json:"createdAt" yaml:"created_at"`
	UpdatedAt string     `json:"updatedAt" yaml:"updated_at"`
}

// String renders one book the way every screen lists it.
func (b Book) String() string {
	return fmt.Sprintf("ID: %d | Title: %s | Author: %s | Year: %d | Status: %s",
		b.ID, b.Title, b.Author, b.Year, b.Status)
}

// BookStatus is one of the fixed set of lending states a book may hold.
type BookStatus string

const (
	StatusAvailable  BookStatus = "available"
	StatusCheckedOut BookStatus = "checked out"
	StatusReserved   BookStatus = "reserved"
)

// bookStatuses holds the full set in its stable rendering order.
var bookStatuses = []BookStatus{StatusAvailable, StatusCheckedOut, StatusReserved}

// Statuses returns the fixed set of book statuses in stable order.
func Statuses() []BookStatus {
	out := make([]BookStatus, len(bookStatuses))
	copy(out, bookStatuses)
	return out
}

// StatusAt maps a 1-based menu position to its status value. It
// reports false when the position falls outside the set.
func StatusAt(pos int) (BookStatus, bool) {
	if pos < 1 || pos > len(bookStatuses) {
		return "", false
	}
	return bookStatuses[pos-1], true
}

// IsValidStatus checks the membership of a given status value.
func IsValidStatus(s BookStatus) bool {
	for _, known := range bookStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// BookStorage defines possible operations on book records. Insert
// assigns a fresh positive unique id and returns the stored book.
type BookStorage interface {
	Insert(ctx context.Context, book Book) (Book, error)
	GetOne(ctx context.Context, id int64) (Book, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, book Book) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}
