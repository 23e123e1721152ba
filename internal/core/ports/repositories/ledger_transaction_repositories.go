package repositories

import (
	"context"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerTransactionReader defines read operations for ledger movements
type LedgerTransactionReader interface {
	// ListTransactionsByAccountID retrieves the movements of one account, newest first.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error)
}

// LedgerTransactionTransactionSupport defines operations participating in a unit of work
type LedgerTransactionTransactionSupport interface {
	// InsertTransactionInTx inserts a movement row as part of a unit of work.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error

	// DeleteTransactionInTx removes a movement row as part of a reversal.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error

	// FindDepositByIncomeIDInTx locates and locks the deposit movement
	// back-referencing an income.
	FindDepositByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.LedgerTransaction, error)

	// FindWithdrawalByExpenseIDInTx locates and locks the withdrawal movement
	// back-referencing an expense.
	FindWithdrawalByExpenseIDInTx(ctx context.Context, tx pgx.Tx, expenseID string) (*domain.LedgerTransaction, error)
}

// LedgerTransactionRepositoryFacade combines all movement-related repository interfaces
type LedgerTransactionRepositoryFacade interface {
	LedgerTransactionReader
	LedgerTransactionTransactionSupport
}
