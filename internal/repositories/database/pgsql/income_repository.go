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

type PgxIncomeRepository struct {
	db *pgxpool.Pool
}

func newPgxIncomeRepository(db *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{db: db}
}

// Ensure PgxIncomeRepository implements portsrepo.IncomeRepositoryFacade
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const incomeColumns = `income_id, date, amount, type, notes, work_id, staff_id, payment_method, payment_details,
		verified, payment_plan_id, created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(row pgx.Row) (*domain.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.Date,
		&m.Amount,
		&m.Type,
		&m.Notes,
		&m.WorkID,
		&m.StaffID,
		&m.PaymentMethod,
		&m.PaymentDetails,
		&m.Verified,
		&m.PaymentPlanID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan income row: %w", err)
	}
	income := mapping.ToDomainIncome(m)
	return &income, nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := fmt.Sprintf(`SELECT %s FROM incomes WHERE income_id = $1;`, incomeColumns)
	return scanIncome(r.db.QueryRow(ctx, query, incomeID))
}

func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, workID *string, limit int) ([]domain.Income, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`
        SELECT %s FROM incomes
        WHERE ($1::text IS NULL OR work_id = $1)
        ORDER BY date DESC, created_at DESC
        LIMIT $2;
    `, incomeColumns)
	rows, err := r.db.Query(ctx, query, workID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		var m models.Income
		err := rows.Scan(
			&m.IncomeID,
			&m.Date,
			&m.Amount,
			&m.Type,
			&m.Notes,
			&m.WorkID,
			&m.StaffID,
			&m.PaymentMethod,
			&m.PaymentDetails,
			&m.Verified,
			&m.PaymentPlanID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, mapping.ToDomainIncome(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}
	return incomes, nil
}

func (r *PgxIncomeRepository) InsertIncomeInTx(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
        INSERT INTO incomes (
            income_id, date, amount, type, notes, work_id, staff_id, payment_method, payment_details,
            verified, payment_plan_id, created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := tx.Exec(ctx, query,
		m.IncomeID,
		m.Date,
		m.Amount,
		m.Type,
		m.Notes,
		m.WorkID,
		m.StaffID,
		m.PaymentMethod,
		m.PaymentDetails,
		m.Verified,
		m.PaymentPlanID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: income %s", apperrors.ErrDuplicate, income.IncomeID)
		}
		return fmt.Errorf("failed to insert income: %w", err)
	}
	return nil
}

func (r *PgxIncomeRepository) DeleteIncomeInTx(ctx context.Context, tx pgx.Tx, incomeID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1;`, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: income %s", apperrors.ErrNotFound, incomeID)
	}
	return nil
}
