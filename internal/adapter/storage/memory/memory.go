// Package memory keeps the tracker state in process memory. Transactions are
// serialized: Begin blocks until the previous transaction has finished.
package memory

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"sync"
)

type DB struct {
	// sem is a one-slot semaphore so Begin can give up on ctx.
	sem   chan struct{}
	mu    sync.RWMutex
	state *storage.State
}

var _ storage.DB = (*DB)(nil)

func New(p profile.Profile) *DB {
	return &DB{
		sem:   make(chan struct{}, 1),
		state: storage.NewState(p),
	}
}

func (db *DB) Begin(ctx context.Context) (storage.Tx, error) {
	select {
	case db.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, storage.InternalError(ctx.Err())
	}

	db.mu.RLock()
	working := db.state.Clone()
	db.mu.RUnlock()

	return &Tx{db: db, state: working}, nil
}

// Snapshot returns a copy of the committed state.
func (db *DB) Snapshot() *storage.State {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.state.Clone()
}

type Tx struct {
	db    *DB
	state *storage.State
	done  bool
}

func (t *Tx) State() *storage.State {
	return t.state
}

func (t *Tx) Commit() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.db.mu.Lock()
	t.db.state = t.state
	t.db.mu.Unlock()
	t.finish()
	return nil
}

func (t *Tx) Rollback() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.done = true
	t.state = nil
	<-t.db.sem
}
