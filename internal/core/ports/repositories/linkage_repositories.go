package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// LinkageRepositoryFacade answers which expenses are claimed by supplier
// invoice items, and performs the atomic claim itself.
type LinkageRepositoryFacade interface {
	// ListLinkedExpenseIDs returns the IDs of all expenses currently claimed
	// by a supplier invoice item.
	ListLinkedExpenseIDs(ctx context.Context) (map[string]struct{}, error)

	// IsExpenseLinked reports whether one expense is claimed.
	IsExpenseLinked(ctx context.Context, expenseID string) (bool, error)

	// ClaimExpenseInTx attaches an expense to an invoice item. The unique
	// constraint on expense_id makes the claim atomic; a second claim fails
	// with apperrors.ErrDuplicate.
	ClaimExpenseInTx(ctx context.Context, tx pgx.Tx, invoiceItemID string, expenseID string) error

	// ReleaseExpenseInTx detaches an expense from its invoice item.
	ReleaseExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error
}
