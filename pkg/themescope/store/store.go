// Package store defines persistence for corpus snapshots. A snapshot is
// the full account/post set fetched from the upstream document store,
// saved locally so renders keep working when the upstream is unreachable.
package store

import (
	"context"
	"time"

	"github.com/proplens/themescope/pkg/themescope/corpus"
)

// Store persists and serves corpus snapshots.
type Store interface {
	Close() error

	// SaveCorpus replaces the stored snapshot with data and stamps the
	// snapshot time.
	SaveCorpus(ctx context.Context, data corpus.Corpus) error
	// LoadCorpus returns the stored snapshot in saved order. An empty
	// store yields an empty corpus, not an error.
	LoadCorpus(ctx context.Context) (corpus.Corpus, error)
	// SnapshotTime returns when the snapshot was last saved; ok is false
	// for an empty store.
	SnapshotTime(ctx context.Context) (time.Time, bool, error)

	// UpsertAccount inserts or replaces a single account and its posts.
	UpsertAccount(ctx context.Context, acct corpus.Account) error
	// GetAccount returns one account by username.
	GetAccount(ctx context.Context, username string) (corpus.Account, bool, error)
	// DeleteAccount removes an account and its posts. Deleting a missing
	// account is not an error.
	DeleteAccount(ctx context.Context, username string) error
}

// SourceOf adapts a store into a corpus.Source so the engine can fetch
// directly from the snapshot.
func SourceOf(s Store) corpus.Source { return sourceAdapter{s} }

type sourceAdapter struct{ s Store }

func (a sourceAdapter) Fetch(ctx context.Context) (corpus.Corpus, error) {
	return a.s.LoadCorpus(ctx)
}
