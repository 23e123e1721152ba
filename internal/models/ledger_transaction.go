package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransactionType mirrors domain.LedgerTransactionType at the DB layer.
type LedgerTransactionType string

const (
	Deposit    LedgerTransactionType = "DEPOSIT"
	Withdrawal LedgerTransactionType = "WITHDRAWAL"
)

// LedgerTransaction is the persisted shape of a ledger movement row.
// Rows are inserted once and deleted only by a reversal; they are never updated.
type LedgerTransaction struct {
	TransactionID       string                `db:"transaction_id"`
	AccountID           string                `db:"account_id"`
	Type                LedgerTransactionType `db:"type"`
	Amount              decimal.Decimal       `db:"amount"`
	Date                time.Time             `db:"date"` // DATE column
	Description         string                `db:"description"`
	Category            string                `db:"category"`
	BalanceAfter        decimal.Decimal       `db:"balance_after"`
	RelatedIncomeID     *string               `db:"related_income_id"`
	RelatedExpenseID    *string               `db:"related_expense_id"`
	RelatedCreditCardID *string               `db:"related_credit_card_payment_id"`
	Notes               string                `db:"notes"`
	CreatedByStaffID    *string               `db:"created_by_staff_id"`
	AuditFields
}
