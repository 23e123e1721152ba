package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
)

// linkageService answers and mutates the supplier-invoice claim on expenses.
type linkageService struct {
	uow         portsrepo.UnitOfWork
	linkageRepo portsrepo.LinkageRepositoryFacade
}

// NewLinkageService creates a new LinkageService.
func NewLinkageService(uow portsrepo.UnitOfWork, linkageRepo portsrepo.LinkageRepositoryFacade) portssvc.LinkageSvcFacade {
	return &linkageService{uow: uow, linkageRepo: linkageRepo}
}

// Ensure linkageService implements the portssvc.LinkageSvcFacade interface
var _ portssvc.LinkageSvcFacade = (*linkageService)(nil)

func (s *linkageService) LinkedExpenseIDs(ctx context.Context) (map[string]struct{}, error) {
	ids, err := s.linkageRepo.ListLinkedExpenseIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked expense IDs: %w", err)
	}
	return ids, nil
}

func (s *linkageService) IsLinked(ctx context.Context, expenseID string) (bool, error) {
	linked, err := s.linkageRepo.IsExpenseLinked(ctx, expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to check linkage for expense %s: %w", expenseID, err)
	}
	return linked, nil
}

// ClaimExpense attaches an expense to an invoice item. The claim relies on
// the unique constraint rather than a read-then-write check, so two invoices
// racing for one expense cannot both win.
func (s *linkageService) ClaimExpense(ctx context.Context, invoiceItemID string, expenseID string) error {
	return s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.linkageRepo.ClaimExpenseInTx(ctx, tx, invoiceItemID, expenseID)
	})
}

// ReleaseExpense runs inside the caller's transaction so the release commits
// or rolls back together with whatever made the claim obsolete.
func (s *linkageService) ReleaseExpense(ctx context.Context, tx pgx.Tx, expenseID string) error {
	if err := s.linkageRepo.ReleaseExpenseInTx(ctx, tx, expenseID); err != nil {
		return fmt.Errorf("failed to release expense %s: %w", expenseID, err)
	}
	return nil
}
