package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalogue() (CatalogueProvider, *MockJournal) {
	journal := &MockJournal{}
	storage := NewMemoryBookStorage(zap.NewNop())
	return NewCatalogue(zap.NewNop(), NewMockClocker(), storage, journal), journal
}

func TestCatalogueAdd(t *testing.T) {
	cat, journal := newTestCatalogue()

	t.Run("assigns fresh unique ids", func(t *testing.T) {
		first, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
		require.NoError(t, err)
		second, err := cat.Add(context.TODO(), "Hyperion", "Dan Simmons", 1989)
		require.NoError(t, err)

		assert.Positive(t, first.ID)
		assert.Positive(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, StatusAvailable, first.Status)
		assert.NotEmpty(t, first.CreatedAt)
	})

	t.Run("journals the mutation", func(t *testing.T) {
		require.NotEmpty(t, journal.Entries)
		assert.Equal(t, AddedAction, journal.Entries[0].Action)
		assert.Equal(t, "Dune", journal.Entries[0].Book.Title)
	})

	t.Run("rejects incomplete drafts", func(t *testing.T) {
		var de *DomainError
		_, err := cat.Add(context.TODO(), "", "Frank Herbert", 1965)
		require.ErrorAs(t, err, &de)
		_, err = cat.Add(context.TODO(), "Dune", "", 1965)
		require.ErrorAs(t, err, &de)
		_, err = cat.Add(context.TODO(), "Dune", "Frank Herbert", 0)
		require.ErrorAs(t, err, &de)
	})
}

func TestCatalogueListAll(t *testing.T) {
	cat, _ := newTestCatalogue()

	t.Run("empty catalogue fails", func(t *testing.T) {
		_, err := cat.ListAll(context.TODO())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyCatalogue)
	})

	t.Run("returns every stored book", func(t *testing.T) {
		_, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
		require.NoError(t, err)
		_, err = cat.Add(context.TODO(), "Hyperion", "Dan Simmons", 1989)
		require.NoError(t, err)

		books, err := cat.ListAll(context.TODO())
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestCatalogueRemove(t *testing.T) {
	cat, journal := newTestCatalogue()
	book, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)

	t.Run("removes and returns the record", func(t *testing.T) {
		removed, err := cat.Remove(context.TODO(), book.ID)
		require.NoError(t, err)
		assert.Equal(t, book.ID, removed.ID)

		_, err = cat.FindByID(context.TODO(), book.ID)
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Equal(t, DeletedAction, journal.Entries[len(journal.Entries)-1].Action)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		var de *DomainError
		_, err := cat.Remove(context.TODO(), 9999)
		require.ErrorAs(t, err, &de)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("unset id fails", func(t *testing.T) {
		var de *DomainError
		_, err := cat.Remove(context.TODO(), 0)
		require.ErrorAs(t, err, &de)
	})
}

func TestCatalogueFindByQuery(t *testing.T) {
	cat, _ := newTestCatalogue()
	_, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)
	_, err = cat.Add(context.TODO(), "Dune Messiah", "Frank Herbert", 1969)
	require.NoError(t, err)
	_, err = cat.Add(context.TODO(), "Hyperion", "Dan Simmons", 1989)
	require.NoError(t, err)

	t.Run("matches title case-insensitively", func(t *testing.T) {
		books, err := cat.FindByQuery(context.TODO(), "dune")
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("matches author", func(t *testing.T) {
		books, err := cat.FindByQuery(context.TODO(), "Simmons")
		require.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, "Hyperion", books[0].Title)
	})

	t.Run("matches year", func(t *testing.T) {
		books, err := cat.FindByQuery(context.TODO(), "1989")
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("no match fails", func(t *testing.T) {
		_, err := cat.FindByQuery(context.TODO(), "neuromancer")
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestCatalogueChangeStatus(t *testing.T) {
	cat, journal := newTestCatalogue()
	book, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)

	t.Run("moves the book to the new status", func(t *testing.T) {
		require.NoError(t, cat.ChangeStatus(context.TODO(), book.ID, StatusCheckedOut))
		got, err := cat.FindByID(context.TODO(), book.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCheckedOut, got.Status)
		assert.Equal(t, StatusChangedAction, journal.Entries[len(journal.Entries)-1].Action)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := cat.ChangeStatus(context.TODO(), book.ID, BookStatus("burned"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("rejects unknown book", func(t *testing.T) {
		err := cat.ChangeStatus(context.TODO(), 9999, StatusAvailable)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("rejects unset id", func(t *testing.T) {
		var de *DomainError
		err := cat.ChangeStatus(context.TODO(), 0, StatusAvailable)
		require.ErrorAs(t, err, &de)
	})
}

func TestCatalogueJournalFailureIsAbsorbed(t *testing.T) {
	journal := &MockJournal{Err: errors.New("journal is down")}
	storage := NewMemoryBookStorage(zap.NewNop())
	cat := NewCatalogue(zap.NewNop(), NewMockClocker(), storage, journal)

	// a failing journal never fails the mutation itself.
	book, err := cat.Add(context.TODO(), "Dune", "Frank Herbert", 1965)
	require.NoError(t, err)
	assert.Positive(t, book.ID)
}
