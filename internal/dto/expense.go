package dto

import (
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date           string          `json:"date" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	Notes          string          `json:"notes"`
	WorkID         *string         `json:"workID"`
	StaffID        *string         `json:"staffID"`
	Vendor         string          `json:"vendor"`
	PaymentMethod  string          `json:"paymentMethod" binding:"required"`
	PaymentDetails string          `json:"paymentDetails"`
	Verified       bool            `json:"verified"`
	// SkipBalanceCheck allows a withdrawal to overdraw the account, for
	// accounts that are permitted to run negative (petty cash advances).
	SkipBalanceCheck bool `json:"skipBalanceCheck"`
}

// ExpenseResponse defines the data returned for an expense record.
type ExpenseResponse struct {
	ExpenseID             string          `json:"expenseID"`
	Date                  string          `json:"date"`
	Amount                decimal.Decimal `json:"amount"`
	Type                  string          `json:"type"`
	Notes                 string          `json:"notes,omitempty"`
	WorkID                *string         `json:"workID,omitempty"`
	StaffID               *string         `json:"staffID,omitempty"`
	Vendor                string          `json:"vendor,omitempty"`
	PaymentMethod         string          `json:"paymentMethod"`
	PaymentDetails        string          `json:"paymentDetails,omitempty"`
	Verified              bool            `json:"verified"`
	PaymentStatus         string          `json:"paymentStatus"`
	PaidDate              *string         `json:"paidDate,omitempty"`
	SupplierInvoiceItemID *string         `json:"supplierInvoiceItemID,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
}

// DeleteExpenseResponse reports what ledger effect, if any, was reverted.
type DeleteExpenseResponse struct {
	RevertedLedgerTransaction *LedgerTransactionResponse `json:"revertedLedgerTransaction,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	var paidDate *string
	if e.PaidDate != nil {
		d := utils.FormatDate(*e.PaidDate)
		paidDate = &d
	}
	return ExpenseResponse{
		ExpenseID:             e.ExpenseID,
		Date:                  utils.FormatDate(e.Date),
		Amount:                e.Amount,
		Type:                  string(e.Type),
		Notes:                 e.Notes,
		WorkID:                e.WorkID,
		StaffID:               e.StaffID,
		Vendor:                e.Vendor,
		PaymentMethod:         e.PaymentMethod,
		PaymentDetails:        e.PaymentDetails,
		Verified:              e.Verified,
		PaymentStatus:         string(e.PaymentStatus),
		PaidDate:              paidDate,
		SupplierInvoiceItemID: e.SupplierInvoiceItemID,
		CreatedAt:             e.CreatedAt,
		CreatedBy:             e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to DTOs
func ToExpenseResponses(es []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(es))
	for i := range es {
		responses[i] = ToExpenseResponse(&es[i])
	}
	return responses
}
