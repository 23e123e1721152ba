package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// UnitOfWork runs a function inside a single database transaction. The
// transaction handle is passed explicitly through every nested call; commit
// or rollback happens exactly once, at the boundary where the unit was opened.
type UnitOfWork interface {
	TransactionManager

	// WithTx begins a transaction, runs fn with it, and commits when fn
	// returns nil. Any error from fn rolls the whole unit back.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
