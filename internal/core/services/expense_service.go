package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
	"github.com/ObraLedger/construction_finance_app/internal/middleware"
	"github.com/ObraLedger/construction_finance_app/internal/utils"
)

const (
	topicExpenseCreated = "expense_created"
	topicExpenseDeleted = "expense_deleted"
)

// expenseService creates and deletes expense records. Unlike income, every
// ledger effect on this path is fatal: a resolvable payment method that
// cannot produce a withdrawal aborts the creation.
type expenseService struct {
	uow         portsrepo.UnitOfWork
	expenseRepo portsrepo.ExpenseRepositoryFacade
	txnRepo     portsrepo.LedgerTransactionRepositoryFacade
	workRepo    portsrepo.WorkRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	linkageSvc  portssvc.LinkageSvcFacade
	publisher   portssvc.EventPublisher // optional; nil disables notifications
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(uow portsrepo.UnitOfWork, expenseRepo portsrepo.ExpenseRepositoryFacade, txnRepo portsrepo.LedgerTransactionRepositoryFacade, workRepo portsrepo.WorkRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, linkageSvc portssvc.LinkageSvcFacade, publisher portssvc.EventPublisher) portssvc.ExpenseSvcFacade {
	return &expenseService{
		uow:         uow,
		expenseRepo: expenseRepo,
		txnRepo:     txnRepo,
		workRepo:    workRepo,
		ledgerSvc:   ledgerSvc,
		linkageSvc:  linkageSvc,
		publisher:   publisher,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense inserts the expense record and its backing withdrawal
// atomically. The expense is stored as unpaid; settling it happens through
// supplier invoices. An initial-materials expense against an assigned work
// also promotes the work to in progress, and that promotion is as fatal as
// the withdrawal itself.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:      uuid.NewString(),
		Date:           utils.NormalizeDate(date),
		Amount:         req.Amount,
		Type:           domain.ExpenseType(req.Type),
		Notes:          req.Notes,
		WorkID:         req.WorkID,
		StaffID:        req.StaffID,
		Vendor:         req.Vendor,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		Verified:       req.Verified,
		PaymentStatus:  domain.PaymentStatusUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorStaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorStaffID,
		},
	}

	err = s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.expenseRepo.InsertExpenseInTx(ctx, tx, expense); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		description := fmt.Sprintf("Expense (%s)", expense.Type)
		txn, err := s.ledgerSvc.RecordWithdrawal(ctx, tx, expense.PaymentMethod, expense.Amount, expense.Date, description, domain.TransactionLink{
			ExpenseID:        &expense.ExpenseID,
			Notes:            expense.Notes,
			CreatedByStaffID: &creatorStaffID,
		}, req.SkipBalanceCheck)
		if err != nil {
			return err
		}
		if txn == nil && s.ledgerSvc.ResolveAccount(expense.PaymentMethod) != "" {
			// The method maps to an account but the account row is missing or
			// inactive. Spending against an untracked balance is not allowed.
			return fmt.Errorf("%w: no active ledger account for payment method %q", apperrors.ErrNotFound, expense.PaymentMethod)
		}

		if expense.Type == domain.ExpenseTypeInitialMaterials && expense.WorkID != nil {
			if err := s.promoteWork(ctx, tx, *expense.WorkID, creatorStaffID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, topicExpenseCreated, dto.ToExpenseResponse(&expense))
	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("payment_method", expense.PaymentMethod))
	return &expense, nil
}

// promoteWork moves an assigned work to in progress when its first materials
// purchase is recorded. The row is locked so concurrent expenses do not race
// the status change. Any failure here aborts the expense.
func (s *expenseService) promoteWork(ctx context.Context, tx pgx.Tx, workID string, staffID string, now time.Time) error {
	work, err := s.workRepo.FindWorkByIDForUpdate(ctx, tx, workID)
	if err != nil {
		return fmt.Errorf("failed to find work %s: %w", workID, err)
	}
	if work.Status != domain.WorkStatusAssigned {
		return nil
	}
	if err := s.workRepo.UpdateWorkStatusInTx(ctx, tx, workID, domain.WorkStatusInProgress, staffID, now); err != nil {
		return fmt.Errorf("failed to promote work %s: %w", workID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Work promoted to in progress", slog.String("work_id", workID))
	return nil
}

// DeleteExpense removes the expense record, reversing its withdrawal first.
// Reversing a withdrawal re-deposits the funds, so it cannot overdraw and
// never fails for balance reasons. A supplier invoice claim on the expense is
// released in the same unit of work; the invoice item survives, unbound.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, staffID string) (*domain.LedgerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	var reverted *domain.LedgerTransaction
	err = s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if s.ledgerSvc.ResolveAccount(expense.PaymentMethod) != "" {
			txn, err := s.txnRepo.FindWithdrawalByExpenseIDInTx(ctx, tx, expense.ExpenseID)
			switch {
			case err == nil:
				if err := s.ledgerSvc.ReverseTransaction(ctx, tx, *txn); err != nil {
					return err
				}
				reverted = txn
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("No withdrawal movement found for ledger-tracked expense",
					slog.String("expense_id", expense.ExpenseID),
					slog.String("payment_method", expense.PaymentMethod))
			default:
				return fmt.Errorf("failed to find withdrawal for expense %s: %w", expense.ExpenseID, err)
			}
		}

		// The linkage row holds a foreign key to the expense; unbind it
		// before the row goes away.
		if err := s.linkageSvc.ReleaseExpense(ctx, tx, expense.ExpenseID); err != nil {
			return err
		}

		if err := s.expenseRepo.DeleteExpenseInTx(ctx, tx, expense.ExpenseID); err != nil {
			return fmt.Errorf("failed to delete expense %s: %w", expense.ExpenseID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, topicExpenseDeleted, map[string]string{"expense_id": expense.ExpenseID})
	logger.Info("Expense deleted", slog.String("expense_id", expense.ExpenseID), slog.Bool("ledger_reverted", reverted != nil))
	return reverted, nil
}

// ListUnpaidExpenses lists unpaid expenses for invoice building. Expenses
// already claimed by a supplier invoice item are excluded even when their
// stored status still says unpaid.
func (s *expenseService) ListUnpaidExpenses(ctx context.Context, workID *string, vendor *string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByStatus(ctx, domain.PaymentStatusUnpaid, portsrepo.ExpenseListFilter{
		WorkID: workID,
		Vendor: vendor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid expenses: %w", err)
	}
	return expenses, nil
}

// ListExpensesByStatus lists expenses by stored payment status.
func (s *expenseService) ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, workID *string) ([]domain.Expense, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, status)
	}
	expenses, err := s.expenseRepo.ListExpensesByStatus(ctx, status, portsrepo.ExpenseListFilter{WorkID: workID})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by status: %w", err)
	}
	return expenses, nil
}

// notify publishes a post-commit event. Failures are logged, never propagated.
func (s *expenseService) notify(ctx context.Context, topic string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish event",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
	}
}
