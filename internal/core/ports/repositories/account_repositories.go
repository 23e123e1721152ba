package repositories

import (
	"context"
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerAccountReader defines read operations for ledger account data
type LedgerAccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error)

	// FindAccountByName retrieves an account by its human name.
	FindAccountByName(ctx context.Context, name string) (*domain.LedgerAccount, error)

	// ListAccounts retrieves all ledger accounts.
	ListAccounts(ctx context.Context) ([]domain.LedgerAccount, error)
}

// LedgerAccountWriter defines write operations for ledger account data
type LedgerAccountWriter interface {
	// SaveAccount persists a new ledger account.
	SaveAccount(ctx context.Context, account domain.LedgerAccount) error
}

// LedgerAccountTransactionSupport defines operations participating in a unit of work
type LedgerAccountTransactionSupport interface {
	// FindActiveAccountByNameForUpdate selects the active account with the
	// given name and locks its row for the duration of the transaction.
	// Returns apperrors.ErrNotFound when no active account matches.
	FindActiveAccountByNameForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.LedgerAccount, error)

	// FindAccountByIDForUpdate selects an account by ID and locks its row.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error)

	// SetAccountBalanceInTx writes the new balance for an already locked account row.
	SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, updatedBy string, now time.Time) error
}

// LedgerAccountRepositoryFacade combines all account-related repository interfaces
type LedgerAccountRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountWriter
	LedgerAccountTransactionSupport
}
