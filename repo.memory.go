package main

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type memoryBookStorage struct {
	logger *zap.Logger
	mu     sync.Mutex
	nextID int64
	books  map[int64]Book
}

// NewMemoryBookStorage provides an instance of in-memory book storage.
// It backs the default zero-setup run and the unit tests.
func NewMemoryBookStorage(logger *zap.Logger) BookStorage {
	return &memoryBookStorage{
		logger: logger,
		books:  make(map[int64]Book),
	}
}

// Insert stores a new book record under a freshly assigned id.
func (ms *memoryBookStorage) Insert(_ context.Context, book Book) (Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.nextID++
	book.ID = ms.nextID
	ms.books[book.ID] = book
	return book, nil
}

// GetOne retrieves a book record based on its ID.
func (ms *memoryBookStorage) GetOne(_ context.Context, id int64) (Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	book, ok := ms.books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// Delete removes a book record based on its ID.
func (ms *memoryBookStorage) Delete(_ context.Context, id int64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(ms.books, id)
	return nil
}

// Update replaces existing book record data.
func (ms *memoryBookStorage) Update(_ context.Context, id int64, book Book) (Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.books[id]; !ok {
		return Book{}, ErrBookNotFound
	}
	book.ID = id
	ms.books[id] = book
	return book, nil
}

// GetAll retrieves all stored books ordered by id.
func (ms *memoryBookStorage) GetAll(_ context.Context) ([]Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	books := make([]Book, 0, len(ms.books))
	for _, book := range ms.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}
