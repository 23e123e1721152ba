package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	"github.com/ObraLedger/construction_finance_app/internal/models"
	"github.com/ObraLedger/construction_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, date, amount, type, notes, work_id, staff_id, vendor, payment_method,
		payment_details, verified, payment_status, paid_date, supplier_invoice_item_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanExpenseRow(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Date,
		&m.Amount,
		&m.Type,
		&m.Notes,
		&m.WorkID,
		&m.StaffID,
		&m.Vendor,
		&m.PaymentMethod,
		&m.PaymentDetails,
		&m.Verified,
		&m.PaymentStatus,
		&m.PaidDate,
		&m.SupplierInvoiceItemID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE expense_id = $1;`, expenseColumns)
	m, err := scanExpenseRow(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(*m)
	return &expense, nil
}

// ListExpensesByStatus filters on the stored status column. For unpaid, the
// NOT EXISTS clause also drops expenses claimed by a supplier invoice item,
// so an expense whose status flag lags behind its linkage never shows up as
// payable twice.
func (r *PgxExpenseRepository) ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, filter portsrepo.ExpenseListFilter) ([]domain.Expense, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM expenses e
        WHERE e.payment_status = $1
          AND ($2::text IS NULL OR e.work_id = $2)
          AND ($3::text IS NULL OR e.vendor = $3)
    `, expenseColumns)
	if status == domain.PaymentStatusUnpaid {
		query += `
          AND NOT EXISTS (
              SELECT 1 FROM supplier_invoice_items sii
              WHERE sii.expense_id = e.expense_id
          )
        `
	}
	query += ` ORDER BY e.date DESC, e.created_at DESC;`

	rows, err := r.db.Query(ctx, query, string(status), filter.WorkID, filter.Vendor)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	ms := []models.Expense{}
	for rows.Next() {
		m, err := scanExpenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) InsertExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (
            expense_id, date, amount, type, notes, work_id, staff_id, vendor, payment_method,
            payment_details, verified, payment_status, paid_date, supplier_invoice_item_id,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := tx.Exec(ctx, query,
		m.ExpenseID,
		m.Date,
		m.Amount,
		m.Type,
		m.Notes,
		m.WorkID,
		m.StaffID,
		m.Vendor,
		m.PaymentMethod,
		m.PaymentDetails,
		m.Verified,
		m.PaymentStatus,
		m.PaidDate,
		m.SupplierInvoiceItemID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense %s", apperrors.ErrDuplicate, expense.ExpenseID)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
