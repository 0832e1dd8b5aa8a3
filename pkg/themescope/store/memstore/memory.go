// Package memstore is an in-memory store.Store implementation for tests
// and ephemeral runs.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/proplens/themescope/pkg/themescope/corpus"
)

// Store is an in-memory snapshot store.
type Store struct {
	mu       sync.RWMutex
	order    []string
	accounts map[string]corpus.Account
	savedAt  time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{accounts: make(map[string]corpus.Account)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveCorpus replaces the snapshot with data.
func (s *Store) SaveCorpus(ctx context.Context, data corpus.Corpus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.accounts = make(map[string]corpus.Account, len(data))
	for _, acct := range data {
		if acct.Username == "" {
			continue
		}
		if _, ok := s.accounts[acct.Username]; !ok {
			s.order = append(s.order, acct.Username)
		}
		s.accounts[acct.Username] = copyAccount(acct)
	}
	s.savedAt = time.Now()
	return nil
}

// LoadCorpus returns the snapshot in saved order.
func (s *Store) LoadCorpus(ctx context.Context) (corpus.Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := make(corpus.Corpus, 0, len(s.order))
	for _, username := range s.order {
		data = append(data, copyAccount(s.accounts[username]))
	}
	return data, nil
}

// SnapshotTime returns the last save time.
func (s *Store) SnapshotTime(ctx context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return time.Time{}, false, nil
	}
	return s.savedAt, true, nil
}

// UpsertAccount inserts or replaces one account.
func (s *Store) UpsertAccount(ctx context.Context, acct corpus.Account) error {
	if acct.Username == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acct.Username]; !ok {
		s.order = append(s.order, acct.Username)
	}
	s.accounts[acct.Username] = copyAccount(acct)
	s.savedAt = time.Now()
	return nil
}

// GetAccount returns one account by username.
func (s *Store) GetAccount(ctx context.Context, username string) (corpus.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[username]
	if !ok {
		return corpus.Account{}, false, nil
	}
	return copyAccount(acct), true, nil
}

// DeleteAccount removes an account if present.
func (s *Store) DeleteAccount(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; !ok {
		return nil
	}
	delete(s.accounts, username)
	for i, u := range s.order {
		if u == username {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyAccount(a corpus.Account) corpus.Account {
	out := a
	out.Posts = make([]corpus.Post, len(a.Posts))
	copy(out.Posts, a.Posts)
	for i, p := range out.Posts {
		if len(p.Hashtags) > 0 {
			tags := make([]string, len(p.Hashtags))
			copy(tags, p.Hashtags)
			out.Posts[i].Hashtags = tags
		}
	}
	return out
}
