package services

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// LinkageSvcFacade answers whether an expense has been claimed by a supplier
// invoice item, and performs the claim itself.
type LinkageSvcFacade interface {
	// LinkedExpenseIDs returns the IDs of all claimed expenses.
	LinkedExpenseIDs(ctx context.Context) (map[string]struct{}, error)

	// IsLinked reports whether one expense is claimed.
	IsLinked(ctx context.Context, expenseID string) (bool, error)

	// ClaimExpense atomically claims an expense for an invoice item. A second
	// claim for the same expense fails with apperrors.ErrDuplicate.
	ClaimExpense(ctx context.Context, invoiceItemID string, expenseID string) error

	// ReleaseExpense detaches an expense from its invoice item inside an
	// already open unit of work. A no-op when the expense is unclaimed.
	ReleaseExpense(ctx context.Context, tx pgx.Tx, expenseID string) error
}
