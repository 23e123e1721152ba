package domain

import (
	"github.com/shopspring/decimal"
)

// SupplierInvoiceItem is one line of a third-party supplier invoice. Claiming
// an expense records that the expense was settled through this line rather
// than paid directly; each expense may be claimed by at most one item,
// enforced by a unique constraint on the linkage.
type SupplierInvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	ExpenseID   *string         `json:"expenseID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
