package services

import (
	"context"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
)

// IncomeSvcFacade creates and deletes income records, keeping the ledger
// consistent with them inside one unit of work per operation.
type IncomeSvcFacade interface {
	// CreateIncome inserts the income and its backing deposit (when the
	// payment method is ledger-tracked) atomically.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorStaffID string) (*domain.Income, error)

	// DeleteIncome removes the income, reversing its deposit first. Returns
	// the reverted movement, or nil when the income had no ledger effect.
	// Fails with apperrors.ErrNegativeBalance when the reversal would
	// overdraw the account.
	DeleteIncome(ctx context.Context, incomeID string, staffID string) (*domain.LedgerTransaction, error)

	// ListIncomes lists income records, newest first.
	ListIncomes(ctx context.Context, workID *string, limit int) ([]domain.Income, error)
}
