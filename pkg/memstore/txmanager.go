package memstore

import (
	"context"
	"sync"
)

type TransactionManagerInterface interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TxManager serializes read-modify-write sequences across the in-memory
// repositories. All state lives in one process, so a single mutex is the
// whole transaction discipline: while fn runs, no other mutating sequence
// can interleave and lose a write.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (tm *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return fn(ctx)
}
