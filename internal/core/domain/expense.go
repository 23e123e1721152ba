package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType classifies an expense record.
type ExpenseType string

const (
	// ExpenseTypeInitialMaterials signals the first materials purchase of a
	// work; recording one against an assigned work promotes it to in progress.
	ExpenseTypeInitialMaterials ExpenseType = "initial_materials"
	ExpenseTypeMaterials        ExpenseType = "materials"
	ExpenseTypeLabor            ExpenseType = "labor"
	ExpenseTypeEquipment        ExpenseType = "equipment"
	ExpenseTypeOther            ExpenseType = "other"
)

// PaymentStatus tracks how (and whether) an expense has been settled.
type PaymentStatus string

const (
	PaymentStatusUnpaid         PaymentStatus = "unpaid"
	PaymentStatusPaid           PaymentStatus = "paid"
	PaymentStatusPaidViaInvoice PaymentStatus = "paid_via_invoice"
)

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusPaidViaInvoice:
		return true
	}
	return false
}

// Expense is a business record of money spent, optionally backed by a
// withdrawal movement in a ledger account. An expense claimed by a supplier
// invoice item is excluded from unpaid listings regardless of PaymentStatus.
type Expense struct {
	ExpenseID      string          `json:"expenseID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Type           ExpenseType     `json:"type"`
	Notes          string          `json:"notes,omitempty"`
	WorkID         *string         `json:"workID,omitempty"`
	StaffID        *string         `json:"staffID,omitempty"`
	Vendor         string          `json:"vendor,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails string          `json:"paymentDetails,omitempty"`
	Verified       bool            `json:"verified"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	PaidDate       *time.Time      `json:"paidDate,omitempty"`
	// SupplierInvoiceItemID references the invoice line item that settled this
	// expense, when it was paid through a supplier invoice.
	SupplierInvoiceItemID *string `json:"supplierInvoiceItemID,omitempty"`
	AuditFields
}
