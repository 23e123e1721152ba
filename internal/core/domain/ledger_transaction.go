package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransactionType indicates whether a movement is a deposit or a withdrawal.
type LedgerTransactionType string

const (
	Deposit    LedgerTransactionType = "DEPOSIT"
	Withdrawal LedgerTransactionType = "WITHDRAWAL"
)

// TransactionCategory classifies a movement by the domain record that caused it.
type TransactionCategory string

const (
	CategoryIncome            TransactionCategory = "income"
	CategoryExpense           TransactionCategory = "expense"
	CategoryCreditCardPayment TransactionCategory = "credit_card_payment"
)

// TransactionLink carries the optional back-references from a ledger movement
// to the domain record that caused it. At most one of the record references
// is populated per movement.
type TransactionLink struct {
	IncomeID            *string
	ExpenseID           *string
	CreditCardPaymentID *string
	Notes               string
	CreatedByStaffID    *string
}

// DeriveWithdrawalCategory returns the category of a withdrawal based on which
// linkage field is populated. A credit-card-payment reference wins over the
// default expense classification.
func DeriveWithdrawalCategory(link TransactionLink) TransactionCategory {
	if link.CreditCardPaymentID != nil {
		return CategoryCreditCardPayment
	}
	return CategoryExpense
}

// LedgerTransaction is an immutable record of one deposit or withdrawal
// against a LedgerAccount. Created once, never mutated; deleted only as part
// of a reversal.
type LedgerTransaction struct {
	TransactionID       string                `json:"transactionID"`
	AccountID           string                `json:"accountID"`
	Type                LedgerTransactionType `json:"type"`
	Amount              decimal.Decimal       `json:"amount"` // Always positive
	Date                time.Time             `json:"date"`   // Calendar date, no time component
	Description         string                `json:"description"`
	Category            TransactionCategory   `json:"category"`
	BalanceAfter        decimal.Decimal       `json:"balanceAfter"`
	RelatedIncomeID     *string               `json:"relatedIncomeID,omitempty"`
	RelatedExpenseID    *string               `json:"relatedExpenseID,omitempty"`
	RelatedCreditCardID *string               `json:"relatedCreditCardPaymentID,omitempty"`
	Notes               string                `json:"notes,omitempty"`
	CreatedByStaffID    *string               `json:"createdByStaffID,omitempty"`
	AuditFields
}
