package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestBoltStore returns a bolt-based store over a temporary file.
func newTestBoltStore() (*boltBookStorage, error) {
	f, err := os.CreateTemp("", "tmp.bolt.db-")
	if err != nil {
		return nil, err
	}
	f.Close()
	testConfig := &Config{
		BoltDB: BoltDBConfig{
			FilePath:      f.Name(),
			Timeout:       5 * time.Second,
			BucketName:    "test.books",
			JournalBucket: "test.journal",
		},
	}

	client, err := GetBoltDBClient(testConfig)

	return &boltBookStorage{
		logger: zap.NewNop(),
		client: client,
		config: &testConfig.BoltDB,
	}, err
}

// closeTestBoltStore closes the temporary bolt store and removes the underlying data file.
func (bs *boltBookStorage) closeTestBoltStore() error {
	defer os.Remove(bs.config.FilePath)
	return bs.Close()
}

// Ensure bolt store can insert a new book with a sequence-assigned id.
func TestBoltStore_InsertBook(t *testing.T) {
	bs, err := newTestBoltStore()
	require.NoError(t, err, "failed in creating a test bolt store")
	defer bs.closeTestBoltStore()

	// Create a new book: the bucket sequence assigns the id.
	book, err := bs.Insert(context.TODO(), Book{Title: "Bolt test book title", Author: "Jerome Amon", Year: 2020})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), book.ID)

	// Verify book can be retrieved.
	got, err := bs.GetOne(context.TODO(), book.ID)
	assert.NoError(t, err)
	assert.Equal(t, book.ID, got.ID)
	assert.Equal(t, "Bolt test book title", got.Title)

	// Ids keep growing across insertions.
	second, err := bs.Insert(context.TODO(), Book{Title: "Second"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestBoltStore_DeleteAndUpdate(t *testing.T) {
	bs, err := newTestBoltStore()
	require.NoError(t, err, "failed in creating a test bolt store")
	defer bs.closeTestBoltStore()

	book, err := bs.Insert(context.TODO(), Book{Title: "Bolt test book title", Status: StatusAvailable})
	require.NoError(t, err)

	t.Run("Update Existent Book", func(t *testing.T) {
		book.Status = StatusReserved
		updated, err := bs.Update(context.TODO(), book.ID, book)
		assert.NoError(t, err)
		assert.Equal(t, StatusReserved, updated.Status)

		got, err := bs.GetOne(context.TODO(), book.ID)
		assert.NoError(t, err)
		assert.Equal(t, StatusReserved, got.Status)
	})

	t.Run("Update NonExistent Book", func(t *testing.T) {
		_, err := bs.Update(context.TODO(), 9999, book)
		assert.Equal(t, ErrBookNotFound, err)
	})

	t.Run("Delete Existent Book", func(t *testing.T) {
		assert.NoError(t, bs.Delete(context.TODO(), book.ID))
		_, err := bs.GetOne(context.TODO(), book.ID)
		assert.Equal(t, ErrBookNotFound, err)
	})

	t.Run("Delete NonExistent Book", func(t *testing.T) {
		assert.Equal(t, ErrBookNotFound, bs.Delete(context.TODO(), book.ID))
	})
}

func TestBoltStore_GetAll(t *testing.T) {
	bs, err := newTestBoltStore()
	require.NoError(t, err, "failed in creating a test bolt store")
	defer bs.closeTestBoltStore()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := bs.Insert(context.TODO(), Book{Title: title})
		require.NoError(t, err)
	}

	books, err := bs.GetAll(context.TODO())
	assert.NoError(t, err)
	require.Len(t, books, 3)
	// big-endian keys keep the walk ordered by id.
	assert.Equal(t, "First", books[0].Title)
	assert.Equal(t, "Third", books[2].Title)
}

func TestBoltJournal(t *testing.T) {
	bs, err := newTestBoltStore()
	require.NoError(t, err, "failed in creating a test bolt store")
	defer bs.closeTestBoltStore()

	journal := NewBoltJournal(zap.NewNop(), NewMockClocker(), bs.config, bs.client).(*boltJournal)

	book := Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: StatusAvailable}
	require.NoError(t, journal.Record(context.TODO(), AddedAction, book))
	require.NoError(t, journal.Record(context.TODO(), StatusChangedAction, book))

	entries, err := journal.Entries(context.TODO())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, AddedAction, entries[0].Action)
	assert.Equal(t, StatusChangedAction, entries[1].Action)
	assert.Equal(t, "Dune", entries[0].Book.Title)
	assert.NotEmpty(t, entries[0].RecordedAt)
}
