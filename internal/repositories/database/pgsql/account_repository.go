package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	"github.com/ObraLedger/construction_finance_app/internal/models"
	"github.com/ObraLedger/construction_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerAccountRepository(db *pgxpool.Pool) portsrepo.LedgerAccountRepositoryFacade {
	return &PgxLedgerAccountRepository{db: db}
}

// Ensure PgxLedgerAccountRepository implements portsrepo.LedgerAccountRepositoryFacade
var _ portsrepo.LedgerAccountRepositoryFacade = (*PgxLedgerAccountRepository)(nil)

const accountColumns = `account_id, name, current_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*domain.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.CurrentBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account row: %w", err)
	}
	account := mapping.ToDomainLedgerAccount(m)
	return &account, nil
}

func (r *PgxLedgerAccountRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
        INSERT INTO ledger_accounts (account_id, name, current_balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.CurrentBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, account.Name)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxLedgerAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_accounts WHERE account_id = $1;`, accountColumns)
	return scanAccount(r.db.QueryRow(ctx, query, accountID))
}

func (r *PgxLedgerAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.LedgerAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_accounts WHERE name = $1;`, accountColumns)
	return scanAccount(r.db.QueryRow(ctx, query, name))
}

func (r *PgxLedgerAccountRepository) ListAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_accounts ORDER BY name;`, accountColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	ms := []models.LedgerAccount{}
	for rows.Next() {
		var m models.LedgerAccount
		err := rows.Scan(
			&m.AccountID,
			&m.Name,
			&m.CurrentBalance,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}

	return mapping.ToDomainLedgerAccountSlice(ms), nil
}

// FindActiveAccountByNameForUpdate locks the account row so concurrent
// movements against the same account serialize on it.
func (r *PgxLedgerAccountRepository) FindActiveAccountByNameForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.LedgerAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_accounts WHERE name = $1 AND is_active FOR UPDATE;`, accountColumns)
	return scanAccount(tx.QueryRow(ctx, query, name))
}

func (r *PgxLedgerAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_accounts WHERE account_id = $1 FOR UPDATE;`, accountColumns)
	return scanAccount(tx.QueryRow(ctx, query, accountID))
}

func (r *PgxLedgerAccountRepository) SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
        UPDATE ledger_accounts
        SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
        WHERE account_id = $1;
    `
	tag, err := tx.Exec(ctx, query, accountID, newBalance, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
