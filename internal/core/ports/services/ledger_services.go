package services

import (
	"context"
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade owns ledger account balance state and the movement
// primitives. Movement operations take the caller's transaction handle: the
// record services open the unit of work and the ledger participates in it.
//
// ResolveAccount returning "" means the payment method has no ledger effect.
// Movement operations return (nil, nil) for such methods, and for methods
// whose mapped account row is missing or inactive; callers decide whether a
// missing account is acceptable.
type LedgerSvcFacade interface {
	// ResolveAccount maps a payment method to a ledger account name, or ""
	// when the method is not ledger-tracked.
	ResolveAccount(paymentMethod string) string

	// RecordDeposit increases the account balance and inserts a movement with
	// category "income". Deposits cannot overdraw and never fail for funds.
	RecordDeposit(ctx context.Context, tx pgx.Tx, paymentMethod string, amount decimal.Decimal, date time.Time, description string, link domain.TransactionLink) (*domain.LedgerTransaction, error)

	// RecordWithdrawal decreases the account balance and inserts a movement.
	// Fails with apperrors.ErrInsufficientFunds when the balance is too low,
	// unless skipBalanceCheck is set.
	RecordWithdrawal(ctx context.Context, tx pgx.Tx, paymentMethod string, amount decimal.Decimal, date time.Time, description string, link domain.TransactionLink, skipBalanceCheck bool) (*domain.LedgerTransaction, error)

	// RecordCreditCardPayment is a withdrawal with a templated description and
	// the credit-card-payment linkage populated.
	RecordCreditCardPayment(ctx context.Context, tx pgx.Tx, fromPaymentMethod string, creditCardName string, amount decimal.Decimal, date time.Time, invoiceRef string) (*domain.LedgerTransaction, error)

	// ReverseTransaction restores the account balance by applying the inverse
	// movement and deletes the movement row. Reversing a deposit fails with
	// apperrors.ErrNegativeBalance when it would overdraw the account.
	ReverseTransaction(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error

	// PayCreditCard opens its own unit of work around RecordCreditCardPayment.
	PayCreditCard(ctx context.Context, req dto.CreateCreditCardPaymentRequest) (*domain.LedgerTransaction, error)

	// ListAccounts returns all ledger accounts.
	ListAccounts(ctx context.Context) ([]domain.LedgerAccount, error)

	// GetAccountByID returns one ledger account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error)

	// ListAccountTransactions returns an account's movements, newest first.
	ListAccountTransactions(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error)
}
