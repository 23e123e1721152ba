package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persisted shape of an expense row.
type Expense struct {
	ExpenseID             string          `db:"expense_id"`
	Date                  time.Time       `db:"date"`
	Amount                decimal.Decimal `db:"amount"`
	Type                  string          `db:"type"`
	Notes                 string          `db:"notes"`
	WorkID                *string         `db:"work_id"`
	StaffID               *string         `db:"staff_id"`
	Vendor                string          `db:"vendor"`
	PaymentMethod         string          `db:"payment_method"`
	PaymentDetails        string          `db:"payment_details"`
	Verified              bool            `db:"verified"`
	PaymentStatus         string          `db:"payment_status"`
	PaidDate              *time.Time      `db:"paid_date"`
	SupplierInvoiceItemID *string         `db:"supplier_invoice_item_id"`
	AuditFields
}
