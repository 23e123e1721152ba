package repositories

import (
	"context"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// IncomeReader defines read operations for income records
type IncomeReader interface {
	// FindIncomeByID retrieves an income record by its identifier.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomes retrieves income records, newest first, optionally filtered by work.
	ListIncomes(ctx context.Context, workID *string, limit int) ([]domain.Income, error)
}

// IncomeTransactionSupport defines operations participating in a unit of work
type IncomeTransactionSupport interface {
	// InsertIncomeInTx inserts an income row as part of a unit of work.
	InsertIncomeInTx(ctx context.Context, tx pgx.Tx, income domain.Income) error

	// DeleteIncomeInTx removes an income row as part of a unit of work.
	DeleteIncomeInTx(ctx context.Context, tx pgx.Tx, incomeID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeTransactionSupport
}
