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

type PgxLedgerTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerTransactionRepository(db *pgxpool.Pool) portsrepo.LedgerTransactionRepositoryFacade {
	return &PgxLedgerTransactionRepository{db: db}
}

// Ensure PgxLedgerTransactionRepository implements portsrepo.LedgerTransactionRepositoryFacade
var _ portsrepo.LedgerTransactionRepositoryFacade = (*PgxLedgerTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, type, amount, date, description, category, balance_after,
		related_income_id, related_expense_id, related_credit_card_payment_id, notes, created_by_staff_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.LedgerTransaction, error) {
	var m models.LedgerTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.Category,
		&m.BalanceAfter,
		&m.RelatedIncomeID,
		&m.RelatedExpenseID,
		&m.RelatedCreditCardID,
		&m.Notes,
		&m.CreatedByStaffID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	txn := mapping.ToDomainLedgerTransaction(m)
	return &txn, nil
}

func (r *PgxLedgerTransactionRepository) FindDepositByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.LedgerTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_transactions WHERE related_income_id = $1 AND type = 'DEPOSIT' FOR UPDATE;`, transactionColumns)
	return scanTransaction(tx.QueryRow(ctx, query, incomeID))
}

func (r *PgxLedgerTransactionRepository) FindWithdrawalByExpenseIDInTx(ctx context.Context, tx pgx.Tx, expenseID string) (*domain.LedgerTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_transactions WHERE related_expense_id = $1 AND type = 'WITHDRAWAL' FOR UPDATE;`, transactionColumns)
	return scanTransaction(tx.QueryRow(ctx, query, expenseID))
}

func (r *PgxLedgerTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
        SELECT %s FROM ledger_transactions
        WHERE account_id = $1
        ORDER BY date DESC, created_at DESC
        LIMIT $2;
    `, transactionColumns)
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.LedgerTransaction{}
	for rows.Next() {
		var m models.LedgerTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Type,
			&m.Amount,
			&m.Date,
			&m.Description,
			&m.Category,
			&m.BalanceAfter,
			&m.RelatedIncomeID,
			&m.RelatedExpenseID,
			&m.RelatedCreditCardID,
			&m.Notes,
			&m.CreatedByStaffID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainLedgerTransactionSlice(ms), nil
}

func (r *PgxLedgerTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	m := mapping.ToModelLedgerTransaction(txn)
	query := `
        INSERT INTO ledger_transactions (
            transaction_id, account_id, type, amount, date, description, category, balance_after,
            related_income_id, related_expense_id, related_credit_card_payment_id, notes, created_by_staff_id,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Type,
		m.Amount,
		m.Date,
		m.Description,
		m.Category,
		m.BalanceAfter,
		m.RelatedIncomeID,
		m.RelatedExpenseID,
		m.RelatedCreditCardID,
		m.Notes,
		m.CreatedByStaffID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PgxLedgerTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM ledger_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
