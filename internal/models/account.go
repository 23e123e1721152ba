package models

import (
	"github.com/shopspring/decimal"
)

// LedgerAccount is the persisted shape of a ledger account row.
type LedgerAccount struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
