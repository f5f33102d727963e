package main

import (
	"context"
	"encoding/json"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"
)

// Journal action names.
const (
	AddedAction         = "added"
	DeletedAction       = "deleted"
	StatusChangedAction = "status changed"
)

// Journaler records every successful catalogue mutation. A failing
// journal never fails the mutation itself: callers log and move on.
type Journaler interface {
	Record(ctx context.Context, action string, book Book) error
}

// JournalEntry is the persisted form of one recorded mutation.
type JournalEntry struct {
	Action     string `json:"action"`
	Book       Book   `json:"book"`
	RecordedAt string `json:"recordedAt"`
}

type boltJournal struct {
	logger *zap.Logger
	clock  Clocker
	client *bolt.DB
	config *BoltDBConfig
}

// NewBoltJournal provides a journal appending entries to a dedicated
// bolt bucket, keyed by the bucket sequence.
func NewBoltJournal(logger *zap.Logger, clock Clocker, boltConfig *BoltDBConfig, client *bolt.DB) Journaler {
	return &boltJournal{
		logger: logger,
		clock:  clock,
		client: client,
		config: boltConfig,
	}
}

// Record appends one mutation entry to the journal bucket.
func (bj *boltJournal) Record(_ context.Context, action string, book Book) error {
	entry := JournalEntry{
		Action:     action,
		Book:       book,
		RecordedAt: bj.clock.Now().UTC().String(),
	}
	entryBytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return bj.client.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bj.config.JournalBucket))
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(itob(int64(seq)), entryBytes)
	})
}

// Entries returns every journal entry in recording order. Kept around
// for inspection tooling and exercised by the tests.
func (bj *boltJournal) Entries(_ context.Context) ([]JournalEntry, error) {
	tx, err := bj.client.Begin(false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	c := tx.Bucket([]byte(bj.config.JournalBucket)).Cursor()
	entries := []JournalEntry{}
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var entry JournalEntry
		if err = json.Unmarshal(v, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type nopJournal struct{}

// NewNopJournal provides a journal that records nothing. Used when no
// bolt database is configured to hold journal entries.
func NewNopJournal() Journaler {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, string, Book) error { return nil }
