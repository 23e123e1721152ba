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

// ledgerService owns ledger account balances and the movement primitives.
// Every balance mutation is a read-modify-write performed on a row locked
// with SELECT ... FOR UPDATE, inside the caller's transaction.
type ledgerService struct {
	uow         portsrepo.UnitOfWork
	accountRepo portsrepo.LedgerAccountRepositoryFacade
	txnRepo     portsrepo.LedgerTransactionRepositoryFacade

	// methodAccounts maps a payment method to the name of the ledger account
	// it moves money through. Methods absent from the map have no ledger
	// effect. Immutable after construction.
	methodAccounts map[string]string
}

// NewLedgerService creates a new LedgerService. The method-to-account mapping
// is copied so later changes to the caller's map cannot leak in.
func NewLedgerService(uow portsrepo.UnitOfWork, accountRepo portsrepo.LedgerAccountRepositoryFacade, txnRepo portsrepo.LedgerTransactionRepositoryFacade, methodAccounts map[string]string) portssvc.LedgerSvcFacade {
	mapping := make(map[string]string, len(methodAccounts))
	for method, account := range methodAccounts {
		mapping[method] = account
	}
	return &ledgerService{
		uow:            uow,
		accountRepo:    accountRepo,
		txnRepo:        txnRepo,
		methodAccounts: mapping,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ResolveAccount maps a payment method to a ledger account name, or "" when
// the method is not ledger-tracked (cash-equivalent methods).
func (s *ledgerService) ResolveAccount(paymentMethod string) string {
	return s.methodAccounts[paymentMethod]
}

// lockAccountForMovement resolves the payment method and locks the matching
// active account row. A nil account with nil error means the movement has no
// ledger effect: either the method is not tracked, or the mapped account row
// is missing or inactive. Callers decide whether that is acceptable.
func (s *ledgerService) lockAccountForMovement(ctx context.Context, tx pgx.Tx, paymentMethod string) (*domain.LedgerAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountName := s.ResolveAccount(paymentMethod)
	if accountName == "" {
		return nil, nil
	}

	account, err := s.accountRepo.FindActiveAccountByNameForUpdate(ctx, tx, accountName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No active ledger account for payment method; movement skipped",
				slog.String("payment_method", paymentMethod),
				slog.String("account_name", accountName))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock account %q: %w", accountName, err)
	}
	return account, nil
}

// RecordDeposit increases the account balance and inserts a movement with
// category "income". Deposits cannot overdraw and never fail for funds.
func (s *ledgerService) RecordDeposit(ctx context.Context, tx pgx.Tx, paymentMethod string, amount decimal.Decimal, date time.Time, description string, link domain.TransactionLink) (*domain.LedgerTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.lockAccountForMovement(ctx, tx, paymentMethod)
	if err != nil || account == nil {
		return nil, err
	}

	newBalance := account.CurrentBalance.Add(amount)
	return s.applyMovement(ctx, tx, account, domain.Deposit, domain.CategoryIncome, amount, newBalance, date, description, link)
}

// RecordWithdrawal decreases the account balance and inserts a movement whose
// category is derived from the populated linkage field. Fails with
// ErrInsufficientFunds when the balance cannot cover the amount, unless
// skipBalanceCheck is set.
func (s *ledgerService) RecordWithdrawal(ctx context.Context, tx pgx.Tx, paymentMethod string, amount decimal.Decimal, date time.Time, description string, link domain.TransactionLink, skipBalanceCheck bool) (*domain.LedgerTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.lockAccountForMovement(ctx, tx, paymentMethod)
	if err != nil || account == nil {
		return nil, err
	}

	if !skipBalanceCheck && account.CurrentBalance.LessThan(amount) {
		return nil, fmt.Errorf("%w: account %q balance %s cannot cover %s",
			apperrors.ErrInsufficientFunds, account.Name, account.CurrentBalance.String(), amount.String())
	}

	newBalance := account.CurrentBalance.Sub(amount)
	category := domain.DeriveWithdrawalCategory(link)
	return s.applyMovement(ctx, tx, account, domain.Withdrawal, category, amount, newBalance, date, description, link)
}

// RecordCreditCardPayment is a withdrawal with a templated description and
// the credit-card-payment linkage populated.
func (s *ledgerService) RecordCreditCardPayment(ctx context.Context, tx pgx.Tx, fromPaymentMethod string, creditCardName string, amount decimal.Decimal, date time.Time, invoiceRef string) (*domain.LedgerTransaction, error) {
	paymentID := uuid.NewString()
	description := fmt.Sprintf("Credit card payment: %s", creditCardName)

	link := domain.TransactionLink{CreditCardPaymentID: &paymentID}
	if invoiceRef != "" {
		link.Notes = fmt.Sprintf("Invoice: %s", invoiceRef)
	}
	return s.RecordWithdrawal(ctx, tx, fromPaymentMethod, amount, date, description, link, false)
}

// applyMovement writes the new balance for the locked account row and inserts
// the movement record carrying the balance snapshot.
func (s *ledgerService) applyMovement(ctx context.Context, tx pgx.Tx, account *domain.LedgerAccount, txnType domain.LedgerTransactionType, category domain.TransactionCategory, amount, newBalance decimal.Decimal, date time.Time, description string, link domain.TransactionLink) (*domain.LedgerTransaction, error) {
	now := time.Now().UTC()
	createdBy := ""
	if link.CreatedByStaffID != nil {
		createdBy = *link.CreatedByStaffID
	}

	if err := s.accountRepo.SetAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, createdBy, now); err != nil {
		return nil, fmt.Errorf("failed to update balance for account %q: %w", account.Name, err)
	}

	txn := domain.LedgerTransaction{
		TransactionID:       uuid.NewString(),
		AccountID:           account.AccountID,
		Type:                txnType,
		Amount:              amount,
		Date:                utils.NormalizeDate(date),
		Description:         description,
		Category:            category,
		BalanceAfter:        newBalance,
		RelatedIncomeID:     link.IncomeID,
		RelatedExpenseID:    link.ExpenseID,
		RelatedCreditCardID: link.CreditCardPaymentID,
		Notes:               link.Notes,
		CreatedByStaffID:    link.CreatedByStaffID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.txnRepo.InsertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to insert ledger transaction for account %q: %w", account.Name, err)
	}
	return &txn, nil
}

// ReverseTransaction restores the account balance by applying the inverse
// movement and deletes the movement row. Reversing a deposit fails with
// ErrNegativeBalance when the inverse would drive the balance below zero;
// reversing a withdrawal credits the amount back and cannot fail on balance
// grounds.
func (s *ledgerService) ReverseTransaction(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, txn.AccountID)
	if err != nil {
		return fmt.Errorf("failed to lock account %s for reversal: %w", txn.AccountID, err)
	}

	var newBalance decimal.Decimal
	switch txn.Type {
	case domain.Deposit:
		newBalance = account.CurrentBalance.Sub(txn.Amount)
		if newBalance.IsNegative() {
			return fmt.Errorf("%w: reversing deposit %s would leave account %q at %s",
				apperrors.ErrNegativeBalance, txn.TransactionID, account.Name, newBalance.String())
		}
	case domain.Withdrawal:
		newBalance = account.CurrentBalance.Add(txn.Amount)
	default:
		return fmt.Errorf("unknown transaction type %q for transaction %s", txn.Type, txn.TransactionID)
	}

	now := time.Now().UTC()
	if err := s.accountRepo.SetAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, account.LastUpdatedBy, now); err != nil {
		return fmt.Errorf("failed to restore balance for account %q: %w", account.Name, err)
	}
	if err := s.txnRepo.DeleteTransactionInTx(ctx, tx, txn.TransactionID); err != nil {
		return fmt.Errorf("failed to delete reversed transaction %s: %w", txn.TransactionID, err)
	}

	logger.Info("Ledger transaction reversed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", account.AccountID),
		slog.String("type", string(txn.Type)),
		slog.String("new_balance", newBalance.String()))
	return nil
}

// PayCreditCard opens its own unit of work around RecordCreditCardPayment.
func (s *ledgerService) PayCreditCard(ctx context.Context, req dto.CreateCreditCardPaymentRequest) (*domain.LedgerTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.ResolveAccount(req.FromPaymentMethod) == "" {
		return nil, fmt.Errorf("%w: payment method %q is not backed by a ledger account", apperrors.ErrValidation, req.FromPaymentMethod)
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	var txn *domain.LedgerTransaction
	err = s.uow.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		txn, err = s.RecordCreditCardPayment(ctx, tx, req.FromPaymentMethod, req.CreditCardName, req.Amount, date, req.InvoiceRef)
		if err != nil {
			return err
		}
		if txn == nil {
			// Resolved method without an active account row: a direct card
			// payment has nothing to draw from.
			return fmt.Errorf("%w: no active ledger account for payment method %q", apperrors.ErrNotFound, req.FromPaymentMethod)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Credit card payment recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("credit_card", req.CreditCardName))
	return txn, nil
}

// ListAccounts returns all ledger accounts.
func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger accounts: %w", err)
	}
	return accounts, nil
}

// GetAccountByID returns one ledger account.
func (s *ledgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccountTransactions returns an account's movements, newest first.
func (s *ledgerService) ListAccountTransactions(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	txns, err := s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return txns, nil
}
