package tracker

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/domain"
)

type AtomicContext struct {
	domain.Aggregate
	ctx context.Context
	tx  storage.Tx
}

func NewAtomicContext(ctx context.Context, tx storage.Tx) (*AtomicContext, error) {
	return &AtomicContext{
		ctx: ctx,
		tx:  tx,
	}, nil
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) State() *storage.State {
	return a.tx.State()
}

func (a *AtomicContext) Commit() error {
	return a.tx.Commit()
}

func (a *AtomicContext) Close() error {
	return nil
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.PopEvents()
}
