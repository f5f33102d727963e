package main

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CatalogueProvider exposes the operations the menu layer consumes.
// Every call either succeeds with a value or fails with a DomainError.
type CatalogueProvider interface {
	ListAll(ctx context.Context) ([]Book, error)
	Add(ctx context.Context, title, author string, year int) (Book, error)
	Remove(ctx context.Context, id int64) (Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
	FindByQuery(ctx context.Context, query string) ([]Book, error)
	ChangeStatus(ctx context.Context, id int64, status BookStatus) error
}

// Catalogue owns the book collection through a pluggable storage
// backend and records every mutation to the journal.
type Catalogue struct {
	logger  *zap.Logger
	clock   Clocker
	storage BookStorage
	journal Journaler
}

// NewCatalogue provides a ready to use catalogue service.
func NewCatalogue(logger *zap.Logger, clock Clocker, storage BookStorage, journal Journaler) CatalogueProvider {
	return &Catalogue{
		logger:  logger,
		clock:   clock,
		storage: storage,
		journal: journal,
	}
}

// ListAll returns every book of the catalogue. An empty catalogue is
// reported as a domain failure so the caller has something to display.
func (c *Catalogue) ListAll(ctx context.Context) ([]Book, error) {
	books, err := c.storage.GetAll(ctx)
	if err != nil {
		return nil, &DomainError{Op: "list books", Err: err}
	}
	if len(books) == 0 {
		return nil, &DomainError{Op: "list books", Err: ErrEmptyCatalogue}
	}
	return books, nil
}

// Add creates a new book from already validated fields. The storage
// assigns the id; the status of a fresh book is always available.
func (c *Catalogue) Add(ctx context.Context, title, author string, year int) (Book, error) {
	if title == "" {
		return Book{}, &DomainError{Op: "add book", Err: missingFieldError("title")}
	}
	if author == "" {
		return Book{}, &DomainError{Op: "add book", Err: missingFieldError("author")}
	}
	if year == 0 {
		return Book{}, &DomainError{Op: "add book", Err: missingFieldError("year")}
	}

	now := c.clock.Now().UTC().String()
	book := Book{
		Title:     title,
		Author:    author,
		Year:      year,
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	book, err := c.storage.Insert(ctx, book)
	if err != nil {
		return Book{}, &DomainError{Op: "add book", Err: err}
	}
	c.record(ctx, AddedAction, book)
	c.logger.Info("catalogue: book added", zap.Int64("book.id", book.ID), zap.String("book.title", book.Title))
	return book, nil
}

// Remove deletes a book by id and returns the removed record.
func (c *Catalogue) Remove(ctx context.Context, id int64) (Book, error) {
	if id == 0 {
		return Book{}, &DomainError{Op: "delete book", Err: missingFieldError("book id")}
	}
	book, err := c.storage.GetOne(ctx, id)
	if err != nil {
		return Book{}, &DomainError{Op: "delete book", Err: err}
	}
	if err = c.storage.Delete(ctx, id); err != nil {
		return Book{}, &DomainError{Op: "delete book", Err: err}
	}
	c.record(ctx, DeletedAction, book)
	c.logger.Info("catalogue: book deleted", zap.Int64("book.id", id))
	return book, nil
}

// FindByID fetches a single book by its identifier.
func (c *Catalogue) FindByID(ctx context.Context, id int64) (Book, error) {
	book, err := c.storage.GetOne(ctx, id)
	if err != nil {
		return Book{}, &DomainError{Op: "find book", Err: err}
	}
	return book, nil
}

// FindByQuery searches title, author and year with a case-insensitive
// substring match. No match is reported as a domain failure.
func (c *Catalogue) FindByQuery(ctx context.Context, query string) ([]Book, error) {
	books, err := c.storage.GetAll(ctx)
	if err != nil {
		return nil, &DomainError{Op: "search books", Err: err}
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := []Book{}
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), needle) ||
			strings.Contains(strings.ToLower(book.Author), needle) ||
			strings.Contains(strconv.Itoa(book.Year), needle) {
			matches = append(matches, book)
		}
	}
	if len(matches) == 0 {
		return nil, &DomainError{Op: "search books", Err: ErrNoMatch}
	}
	return matches, nil
}

// ChangeStatus moves a book to a new member of the status set.
func (c *Catalogue) ChangeStatus(ctx context.Context, id int64, status BookStatus) error {
	if id == 0 {
		return &DomainError{Op: "change status", Err: missingFieldError("book id")}
	}
	if !IsValidStatus(status) {
		return &DomainError{Op: "change status", Err: ErrInvalidStatus}
	}
	book, err := c.storage.GetOne(ctx, id)
	if err != nil {
		return &DomainError{Op: "change status", Err: err}
	}
	book.Status = status
	book.UpdatedAt = c.clock.Now().UTC().String()
	book, err = c.storage.Update(ctx, id, book)
	if err != nil {
		return &DomainError{Op: "change status", Err: err}
	}
	c.record(ctx, StatusChangedAction, book)
	c.logger.Info("catalogue: book status changed", zap.Int64("book.id", id), zap.String("book.status", string(status)))
	return nil
}

// record journals one mutation. Journal failures are logged, never raised.
func (c *Catalogue) record(ctx context.Context, action string, book Book) {
	if err := c.journal.Record(ctx, action, book); err != nil {
		c.logger.Error("catalogue: failed to journal mutation", zap.String("action", action), zap.Int64("book.id", book.ID), zap.Error(err))
	}
}
