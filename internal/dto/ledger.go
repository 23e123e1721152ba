package dto

import (
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// LedgerTransactionResponse defines the data returned for a ledger movement.
type LedgerTransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	AccountID           string          `json:"accountID"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	Date                string          `json:"date"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	BalanceAfter        decimal.Decimal `json:"balanceAfter"`
	RelatedIncomeID     *string         `json:"relatedIncomeID,omitempty"`
	RelatedExpenseID    *string         `json:"relatedExpenseID,omitempty"`
	RelatedCreditCardID *string         `json:"relatedCreditCardPaymentID,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// CreateCreditCardPaymentRequest defines the data needed to pay a credit card
// from a ledger-tracked account.
type CreateCreditCardPaymentRequest struct {
	FromPaymentMethod string          `json:"fromPaymentMethod" binding:"required"`
	CreditCardName    string          `json:"creditCardName" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Date              string          `json:"date" binding:"required"`
	InvoiceRef        string          `json:"invoiceRef"`
	StaffID           *string         `json:"staffID"`
}

// ToAccountResponse converts a domain.LedgerAccount to AccountResponse DTO
func ToAccountResponse(acc *domain.LedgerAccount) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		CurrentBalance: acc.CurrentBalance,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain.LedgerAccount to DTOs
func ToAccountResponses(accs []domain.LedgerAccount) []AccountResponse {
	responses := make([]AccountResponse, len(accs))
	for i := range accs {
		responses[i] = ToAccountResponse(&accs[i])
	}
	return responses
}

// ToLedgerTransactionResponse converts a domain.LedgerTransaction to its DTO
func ToLedgerTransactionResponse(txn *domain.LedgerTransaction) LedgerTransactionResponse {
	return LedgerTransactionResponse{
		TransactionID:       txn.TransactionID,
		AccountID:           txn.AccountID,
		Type:                string(txn.Type),
		Amount:              txn.Amount,
		Date:                utils.FormatDate(txn.Date),
		Description:         txn.Description,
		Category:            string(txn.Category),
		BalanceAfter:        txn.BalanceAfter,
		RelatedIncomeID:     txn.RelatedIncomeID,
		RelatedExpenseID:    txn.RelatedExpenseID,
		RelatedCreditCardID: txn.RelatedCreditCardID,
		Notes:               txn.Notes,
	}
}

// ToLedgerTransactionResponses converts a slice of domain.LedgerTransaction to DTOs
func ToLedgerTransactionResponses(txns []domain.LedgerTransaction) []LedgerTransactionResponse {
	responses := make([]LedgerTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToLedgerTransactionResponse(&txns[i])
	}
	return responses
}
