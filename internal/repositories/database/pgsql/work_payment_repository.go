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

type PgxWorkPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkPaymentRepository(db *pgxpool.Pool) portsrepo.WorkPaymentRepositoryFacade {
	return &PgxWorkPaymentRepository{db: db}
}

// Ensure PgxWorkPaymentRepository implements portsrepo.WorkPaymentRepositoryFacade
var _ portsrepo.WorkPaymentRepositoryFacade = (*PgxWorkPaymentRepository)(nil)

func (r *PgxWorkPaymentRepository) FindPlanByID(ctx context.Context, planID string) (*domain.WorkPaymentPlan, error) {
	query := `
        SELECT plan_id, work_id, total_agreed, total_paid, created_at, created_by, last_updated_at, last_updated_by
        FROM work_payment_plans
        WHERE plan_id = $1;
    `
	var m models.WorkPaymentPlan
	err := r.db.QueryRow(ctx, query, planID).Scan(
		&m.PlanID,
		&m.WorkID,
		&m.TotalAgreed,
		&m.TotalPaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan by ID %s: %w", planID, err)
	}
	plan := mapping.ToDomainWorkPaymentPlan(m)
	return &plan, nil
}

func (r *PgxWorkPaymentRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.WorkPaymentEntry) error {
	m := mapping.ToModelWorkPaymentEntry(entry)
	query := `
        INSERT INTO work_payment_entries (
            entry_id, plan_id, income_id, amount, date,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.PlanID,
		m.IncomeID,
		m.Amount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry for income %s", apperrors.ErrDuplicate, entry.IncomeID)
		}
		return fmt.Errorf("failed to insert payment entry: %w", err)
	}
	return nil
}

func (r *PgxWorkPaymentRepository) DeleteEntryByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.WorkPaymentEntry, error) {
	query := `
        DELETE FROM work_payment_entries
        WHERE income_id = $1
        RETURNING entry_id, plan_id, income_id, amount, date, created_at, created_by, last_updated_at, last_updated_by;
    `
	var m models.WorkPaymentEntry
	err := tx.QueryRow(ctx, query, incomeID).Scan(
		&m.EntryID,
		&m.PlanID,
		&m.IncomeID,
		&m.Amount,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete payment entry for income %s: %w", incomeID, err)
	}
	entry := mapping.ToDomainWorkPaymentEntry(m)
	return &entry, nil
}

// RecomputePlanTotalInTx derives total_paid from the surviving entries rather
// than applying a delta, so repeated reversals converge on the same value.
func (r *PgxWorkPaymentRepository) RecomputePlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, updatedBy string, now time.Time) (decimal.Decimal, error) {
	query := `
        UPDATE work_payment_plans
        SET total_paid = COALESCE((
                SELECT SUM(amount) FROM work_payment_entries WHERE plan_id = $1
            ), 0),
            last_updated_at = $2,
            last_updated_by = $3
        WHERE plan_id = $1
        RETURNING total_paid;
    `
	var totalPaid decimal.Decimal
	err := tx.QueryRow(ctx, query, planID, now, updatedBy).Scan(&totalPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
		}
		return decimal.Zero, fmt.Errorf("failed to recompute total for plan %s: %w", planID, err)
	}
	return totalPaid, nil
}

func (r *PgxWorkPaymentRepository) AdjustPlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, delta decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
        UPDATE work_payment_plans
        SET total_paid = total_paid + $2, last_updated_at = $3, last_updated_by = $4
        WHERE plan_id = $1;
    `
	tag, err := tx.Exec(ctx, query, planID, delta, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust total for plan %s: %w", planID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
	}
	return nil
}
