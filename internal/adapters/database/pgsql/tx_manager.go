package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	portsrepo "github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// txKey carries an open pgx.Tx through the context so repositories can join
// an enclosing transaction scope transparently.
type txKey struct{}

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, which is what lets the same repository
// methods run inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querierFromCtx resolves the connection to use: the transaction stashed in
// the context if one is open, otherwise the pool.
func querierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// TxManager runs units of work inside a single database transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a TxManager backed by the given pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

var _ portsrepo.TxManager = (*TxManager)(nil)

// WithinTx begins a transaction, runs fn with a context carrying it, and
// commits on a nil return. Any error from fn, or a panic, rolls the whole
// unit back before propagating.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewPersistence("begin transaction", err)
	}
	defer func() {
		// No-op once committed; pgx returns ErrTxClosed which we ignore.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewPersistence("commit transaction", err)
	}
	return nil
}
