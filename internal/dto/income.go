package dto

import (
	"time"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income.
type CreateIncomeRequest struct {
	Date           string          `json:"date" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	Notes          string          `json:"notes"`
	WorkID         *string         `json:"workID"`
	StaffID        *string         `json:"staffID"`
	PaymentMethod  string          `json:"paymentMethod" binding:"required"`
	PaymentDetails string          `json:"paymentDetails"`
	Verified       bool            `json:"verified"`
	// PaymentPlanID targets the work payment plan credited when the income
	// type is invoice_payment.
	PaymentPlanID *string `json:"paymentPlanID"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID       string          `json:"incomeID"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes,omitempty"`
	WorkID         *string         `json:"workID,omitempty"`
	StaffID        *string         `json:"staffID,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails string          `json:"paymentDetails,omitempty"`
	Verified       bool            `json:"verified"`
	PaymentPlanID  *string         `json:"paymentPlanID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// DeleteIncomeResponse reports what ledger effect, if any, was reverted.
type DeleteIncomeResponse struct {
	RevertedLedgerTransaction *LedgerTransactionResponse `json:"revertedLedgerTransaction,omitempty"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:       in.IncomeID,
		Date:           utils.FormatDate(in.Date),
		Amount:         in.Amount,
		Type:           string(in.Type),
		Notes:          in.Notes,
		WorkID:         in.WorkID,
		StaffID:        in.StaffID,
		PaymentMethod:  in.PaymentMethod,
		PaymentDetails: in.PaymentDetails,
		Verified:       in.Verified,
		PaymentPlanID:  in.PaymentPlanID,
		CreatedAt:      in.CreatedAt,
		CreatedBy:      in.CreatedBy,
	}
}

// ToIncomeResponses converts a slice of domain.Income to DTOs
func ToIncomeResponses(ins []domain.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(ins))
	for i := range ins {
		responses[i] = ToIncomeResponse(&ins[i])
	}
	return responses
}
