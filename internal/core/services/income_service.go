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
	topicIncomeCreated = "income_created"
	topicIncomeDeleted = "income_deleted"
)

// incomeService creates and deletes income records, keeping ledger balances
// consistent with them inside one unit of work per operation.
type incomeService struct {
	uow             portsrepo.UnitOfWork
	incomeRepo      portsrepo.IncomeRepositoryFacade
	txnRepo         portsrepo.LedgerTransactionRepositoryFacade
	workPaymentRepo portsrepo.WorkPaymentRepositoryFacade
	ledgerSvc       portssvc.LedgerSvcFacade
	publisher       portssvc.EventPublisher // optional; nil disables notifications
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(uow portsrepo.UnitOfWork, incomeRepo portsrepo.IncomeRepositoryFacade, txnRepo portsrepo.LedgerTransactionRepositoryFacade, workPaymentRepo portsrepo.WorkPaymentRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, publisher portssvc.EventPublisher) portssvc.IncomeSvcFacade {
	return &incomeService{
		uow:             uow,
		incomeRepo:      incomeRepo,
		txnRepo:         txnRepo,
		workPaymentRepo: workPaymentRepo,
		ledgerSvc:       ledgerSvc,
		publisher:       publisher,
	}
}

// Ensure incomeService implements the portssvc.IncomeSvcFacade interface
var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// CreateIncome inserts the income record and, when the payment method maps to
// a ledger account, the matching deposit movement, atomically. The
// work-payment-plan side record is a soft side effect: its failure is logged
// and swallowed without aborting the income.
func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorStaffID string) (*domain.Income, error) {
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
	income := domain.Income{
		IncomeID:       uuid.NewString(),
		Date:           utils.NormalizeDate(date),
		Amount:         req.Amount,
		Type:           domain.IncomeType(req.Type),
		Notes:          req.Notes,
		WorkID:         req.WorkID,
		StaffID:        req.StaffID,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		Verified:       req.Verified,
		PaymentPlanID:  req.PaymentPlanID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorStaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorStaffID,
		},
	}

	err = s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.incomeRepo.InsertIncomeInTx(ctx, tx, income); err != nil {
			return fmt.Errorf("failed to insert income: %w", err)
		}

		if income.Type == domain.IncomeTypeInvoicePayment && income.PaymentPlanID != nil {
			if err := s.applyPlanPayment(ctx, tx, income, *income.PaymentPlanID, creatorStaffID); err != nil {
				// Soft side effect: the income stands even when the plan
				// aggregate could not be credited.
				logger.Warn("Failed to apply work payment plan side record",
					slog.String("income_id", income.IncomeID),
					slog.String("plan_id", *income.PaymentPlanID),
					slog.String("error", err.Error()))
			}
		}

		description := fmt.Sprintf("Income (%s)", income.Type)
		_, err := s.ledgerSvc.RecordDeposit(ctx, tx, income.PaymentMethod, income.Amount, income.Date, description, domain.TransactionLink{
			IncomeID:         &income.IncomeID,
			Notes:            income.Notes,
			CreatedByStaffID: &creatorStaffID,
		})
		if err != nil {
			// RecordDeposit returns (nil, nil) for unmapped, missing, or
			// inactive accounts, so funds and not-found errors are not
			// expected on the deposit path; re-raise them unchanged in case
			// the ledger contract ever starts producing them.
			if errors.Is(err, apperrors.ErrInsufficientFunds) || errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			return fmt.Errorf("failed to record deposit for income %s: %w", income.IncomeID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, topicIncomeCreated, dto.ToIncomeResponse(&income))
	logger.Info("Income created", slog.String("income_id", income.IncomeID), slog.String("payment_method", income.PaymentMethod))
	return &income, nil
}

// applyPlanPayment inserts the payment-applied side record and recomputes the
// plan's total inside a savepoint, so a failure leaves the outer unit of work
// usable.
func (s *incomeService) applyPlanPayment(ctx context.Context, tx pgx.Tx, income domain.Income, planID string, staffID string) error {
	nested, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to open savepoint: %w", err)
	}

	now := time.Now().UTC()
	entry := domain.WorkPaymentEntry{
		EntryID:  uuid.NewString(),
		PlanID:   planID,
		IncomeID: income.IncomeID,
		Amount:   income.Amount,
		Date:     income.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}
	if err := s.workPaymentRepo.InsertEntryInTx(ctx, nested, entry); err != nil {
		_ = nested.Rollback(ctx)
		return fmt.Errorf("failed to insert plan entry: %w", err)
	}
	if _, err := s.workPaymentRepo.RecomputePlanTotalInTx(ctx, nested, planID, staffID, now); err != nil {
		_ = nested.Rollback(ctx)
		return fmt.Errorf("failed to recompute plan total: %w", err)
	}
	return nested.Commit(ctx)
}

// DeleteIncome removes the income record, reversing its deposit movement
// first. The reversal fails the whole deletion with ErrNegativeBalance when
// it would overdraw the account. The work-payment-plan side record is
// reversed best-effort through two strategies tried in fixed order.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID string, staffID string) (*domain.LedgerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income %s: %w", incomeID, err)
	}

	var reverted *domain.LedgerTransaction
	err = s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if s.ledgerSvc.ResolveAccount(income.PaymentMethod) != "" {
			txn, err := s.txnRepo.FindDepositByIncomeIDInTx(ctx, tx, income.IncomeID)
			switch {
			case err == nil:
				if err := s.ledgerSvc.ReverseTransaction(ctx, tx, *txn); err != nil {
					return err
				}
				reverted = txn
			case errors.Is(err, apperrors.ErrNotFound):
				// Income predates ledger tracking for this method, or the
				// account was inactive at creation time.
				logger.Warn("No deposit movement found for ledger-tracked income",
					slog.String("income_id", income.IncomeID),
					slog.String("payment_method", income.PaymentMethod))
			default:
				return fmt.Errorf("failed to find deposit for income %s: %w", income.IncomeID, err)
			}
		}

		s.reversePlanPayment(ctx, tx, *income, staffID)

		if err := s.incomeRepo.DeleteIncomeInTx(ctx, tx, income.IncomeID); err != nil {
			return fmt.Errorf("failed to delete income %s: %w", income.IncomeID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, topicIncomeDeleted, map[string]string{"income_id": income.IncomeID})
	logger.Info("Income deleted", slog.String("income_id", income.IncomeID), slog.Bool("ledger_reverted", reverted != nil))
	return reverted, nil
}

// reversePlanPayment undoes the work-payment-plan side record. Two named
// strategies run in fixed order: the structured entry link first, then the
// legacy direct plan reference kept for rows written before entries existed.
// Each strategy is best-effort and independently logged; neither aborts the
// deletion.
func (s *incomeService) reversePlanPayment(ctx context.Context, tx pgx.Tx, income domain.Income, staffID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	handled, err := s.reverseByEntryLink(ctx, tx, income, staffID)
	if err != nil {
		logger.Warn("Plan reversal via entry link failed",
			slog.String("income_id", income.IncomeID),
			slog.String("error", err.Error()))
	}
	if handled {
		return
	}

	handled, err = s.reverseByLegacyReference(ctx, tx, income, staffID)
	if err != nil {
		logger.Warn("Plan reversal via legacy reference failed",
			slog.String("income_id", income.IncomeID),
			slog.String("error", err.Error()))
	}
	if handled {
		logger.Info("Plan reversal resolved through legacy reference",
			slog.String("income_id", income.IncomeID))
	}
}

// reverseByEntryLink deletes the payment-applied entry referencing the income
// and recomputes the plan total. Returns handled=false when no entry exists.
func (s *incomeService) reverseByEntryLink(ctx context.Context, tx pgx.Tx, income domain.Income, staffID string) (bool, error) {
	nested, err := tx.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to open savepoint: %w", err)
	}

	entry, err := s.workPaymentRepo.DeleteEntryByIncomeIDInTx(ctx, nested, income.IncomeID)
	if err != nil {
		_ = nested.Rollback(ctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC()
	if _, err := s.workPaymentRepo.RecomputePlanTotalInTx(ctx, nested, entry.PlanID, staffID, now); err != nil {
		_ = nested.Rollback(ctx)
		return false, err
	}
	return true, nested.Commit(ctx)
}

// reverseByLegacyReference decrements the plan total named directly on the
// income row. No entry exists to recompute from, so the income amount is
// subtracted as a delta. Only invoice-payment incomes ever credit a plan, so
// only they are debited here; a plan reference on any other income type is
// inert on both paths.
func (s *incomeService) reverseByLegacyReference(ctx context.Context, tx pgx.Tx, income domain.Income, staffID string) (bool, error) {
	if income.Type != domain.IncomeTypeInvoicePayment || income.PaymentPlanID == nil {
		return false, nil
	}

	nested, err := tx.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to open savepoint: %w", err)
	}

	now := time.Now().UTC()
	if err := s.workPaymentRepo.AdjustPlanTotalInTx(ctx, nested, *income.PaymentPlanID, income.Amount.Neg(), staffID, now); err != nil {
		_ = nested.Rollback(ctx)
		return false, err
	}
	return true, nested.Commit(ctx)
}

// ListIncomes lists income records, newest first.
func (s *incomeService) ListIncomes(ctx context.Context, workID *string, limit int) ([]domain.Income, error) {
	if limit <= 0 {
		limit = 50
	}
	incomes, err := s.incomeRepo.ListIncomes(ctx, workID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// notify publishes a post-commit event. Failures are logged, never propagated.
func (s *incomeService) notify(ctx context.Context, topic string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish event",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
	}
}
