package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "db_tx"

// WithTx begins a transaction on the pool and returns a derived context that
// carries it. Repositories pick the transaction up via TxFromContext, so
// every statement issued under the returned context joins the same
// transaction. The caller owns commit/rollback.
func WithTx(ctx context.Context, pool *pgxpool.Pool) (context.Context, pgx.Tx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return ctx, nil, fmt.Errorf("begin transaction: %w", err)
	}
	return context.WithValue(ctx, txKey, tx), tx, nil
}

// TxFromContext retrieves the transaction from context, or nil when the
// context carries none.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}

// InTx runs fn inside a transaction. On error the transaction is rolled back
// and the error returned; otherwise it is committed. Mutating service
// operations use this so no entity is ever left half-constructed.
func InTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	txCtx, tx, err := WithTx(ctx, pool)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
