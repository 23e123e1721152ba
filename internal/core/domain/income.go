package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType classifies an income record.
type IncomeType string

const (
	IncomeTypeWorkAdvance IncomeType = "work_advance"
	IncomeTypeWorkFinal   IncomeType = "work_final"
	// IncomeTypeInvoicePayment marks money received as a third-party supplier
	// invoice payment; it triggers the work-payment-plan side record.
	IncomeTypeInvoicePayment IncomeType = "invoice_payment"
	IncomeTypeOther          IncomeType = "other"
)

// Income is a business record of money received, optionally backed by a
// deposit movement in a ledger account.
type Income struct {
	IncomeID       string          `json:"incomeID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Type           IncomeType      `json:"type"`
	Notes          string          `json:"notes,omitempty"`
	WorkID         *string         `json:"workID,omitempty"`
	StaffID        *string         `json:"staffID,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails string          `json:"paymentDetails,omitempty"`
	Verified       bool            `json:"verified"`
	// PaymentPlanID is the legacy direct reference to a work payment plan,
	// kept until existing rows are migrated to work_payment_entries.
	PaymentPlanID *string `json:"paymentPlanID,omitempty"`
	AuditFields
}
