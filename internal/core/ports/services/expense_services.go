package services

import (
	"context"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
)

// ExpenseSvcFacade creates and deletes expense records, keeping the ledger
// consistent with them inside one unit of work per operation. Unlike income,
// an expense against a ledger-tracked method must successfully reserve funds
// or the whole creation fails.
type ExpenseSvcFacade interface {
	// CreateExpense inserts the expense and its backing withdrawal
	// atomically. May also promote the linked work from assigned to in
	// progress; a promotion failure aborts the creation.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error)

	// DeleteExpense removes the expense, reversing its withdrawal first.
	// Returns the reverted movement, or nil when there was no ledger effect.
	DeleteExpense(ctx context.Context, expenseID string, staffID string) (*domain.LedgerTransaction, error)

	// ListUnpaidExpenses lists unpaid expenses, excluding any already claimed
	// by a supplier invoice item regardless of their stored status flag.
	ListUnpaidExpenses(ctx context.Context, workID *string, vendor *string) ([]domain.Expense, error)

	// ListExpensesByStatus lists expenses by stored payment status. The
	// unpaid status applies the same linkage exclusion as ListUnpaidExpenses.
	ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, workID *string) ([]domain.Expense, error)
}
