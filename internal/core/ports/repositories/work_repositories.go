package repositories

import (
	"context"
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WorkRepositoryFacade exposes the slice of the Work aggregate the finance
// engine touches: reading and promoting the status inside a unit of work.
type WorkRepositoryFacade interface {
	// FindWorkByIDForUpdate selects a work row and locks it for the transaction.
	FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error)

	// UpdateWorkStatusInTx writes a new status for an already locked work row.
	UpdateWorkStatusInTx(ctx context.Context, tx pgx.Tx, workID string, status domain.WorkStatus, updatedBy string, now time.Time) error
}

// WorkPaymentRepositoryFacade manages work payment plans and their
// payment-applied side records.
type WorkPaymentRepositoryFacade interface {
	// FindPlanByID retrieves a payment plan.
	FindPlanByID(ctx context.Context, planID string) (*domain.WorkPaymentPlan, error)

	// InsertEntryInTx inserts a payment-applied side record.
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.WorkPaymentEntry) error

	// DeleteEntryByIncomeIDInTx removes the side record referencing an income
	// and returns it. Returns apperrors.ErrNotFound when no entry exists.
	DeleteEntryByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.WorkPaymentEntry, error)

	// RecomputePlanTotalInTx re-derives total_paid from the surviving entries.
	RecomputePlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, updatedBy string, now time.Time) (decimal.Decimal, error)

	// AdjustPlanTotalInTx applies a delta to total_paid. Used by the legacy
	// reversal path where no side record exists to recompute from.
	AdjustPlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, delta decimal.Decimal, updatedBy string, now time.Time) error
}
