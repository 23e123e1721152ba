package repositories

import (
	"context"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ExpenseListFilter narrows expense listings. Nil fields are not applied.
type ExpenseListFilter struct {
	WorkID *string
	Vendor *string
}

// ExpenseReader defines read operations for expense records
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense record by its identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByStatus retrieves expenses with the given stored payment
	// status. When status is unpaid, expenses already claimed in the supplier
	// invoice linkage are excluded regardless of their stored flag.
	ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, filter ExpenseListFilter) ([]domain.Expense, error)
}

// ExpenseTransactionSupport defines operations participating in a unit of work
type ExpenseTransactionSupport interface {
	// InsertExpenseInTx inserts an expense row as part of a unit of work.
	InsertExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error

	// DeleteExpenseInTx removes an expense row as part of a unit of work.
	DeleteExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseTransactionSupport
}
