package pgsql

import (
	"context"
	"fmt"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLinkageRepository struct {
	db *pgxpool.Pool
}

func newPgxLinkageRepository(db *pgxpool.Pool) portsrepo.LinkageRepositoryFacade {
	return &PgxLinkageRepository{db: db}
}

// Ensure PgxLinkageRepository implements portsrepo.LinkageRepositoryFacade
var _ portsrepo.LinkageRepositoryFacade = (*PgxLinkageRepository)(nil)

func (r *PgxLinkageRepository) ListLinkedExpenseIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT expense_id FROM supplier_invoice_items WHERE expense_id IS NOT NULL;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query linked expense IDs: %w", err)
	}
	defer rows.Close()

	ids := map[string]struct{}{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan linked expense ID: %w", err)
		}
		ids[id] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating linkage rows: %w", rows.Err())
	}
	return ids, nil
}

func (r *PgxLinkageRepository) IsExpenseLinked(ctx context.Context, expenseID string) (bool, error) {
	var linked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM supplier_invoice_items WHERE expense_id = $1);`,
		expenseID,
	).Scan(&linked)
	if err != nil {
		return false, fmt.Errorf("failed to check linkage for expense %s: %w", expenseID, err)
	}
	return linked, nil
}

// ClaimExpenseInTx sets expense_id on the invoice item. The unique index on
// expense_id arbitrates concurrent claims; the loser gets ErrDuplicate.
func (r *PgxLinkageRepository) ClaimExpenseInTx(ctx context.Context, tx pgx.Tx, invoiceItemID string, expenseID string) error {
	query := `
        UPDATE supplier_invoice_items
        SET expense_id = $2
        WHERE item_id = $1 AND expense_id IS NULL;
    `
	tag, err := tx.Exec(ctx, query, invoiceItemID, expenseID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense %s is already claimed", apperrors.ErrDuplicate, expenseID)
		}
		return fmt.Errorf("failed to claim expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice item %s not found or already bound", apperrors.ErrNotFound, invoiceItemID)
	}
	return nil
}

func (r *PgxLinkageRepository) ReleaseExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error {
	query := `
        UPDATE supplier_invoice_items
        SET expense_id = NULL
        WHERE expense_id = $1;
    `
	if _, err := tx.Exec(ctx, query, expenseID); err != nil {
		return fmt.Errorf("failed to release expense %s: %w", expenseID, err)
	}
	return nil
}
