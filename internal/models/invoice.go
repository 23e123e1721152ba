package models

import (
	"github.com/shopspring/decimal"
)

// SupplierInvoiceItem is the persisted shape of a supplier invoice line item.
// expense_id carries a UNIQUE constraint so an expense can be claimed by at
// most one item.
type SupplierInvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	ExpenseID   *string         `db:"expense_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	AuditFields
}
