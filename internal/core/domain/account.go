package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerAccount represents a named money pool (bank account, petty-cash box)
// with a running balance. Balances are mutated only by the ledger service,
// through a read-modify-write performed under a row lock.
//
// Invariant: CurrentBalance equals the opening balance plus the sum of deposit
// movement amounts minus the sum of withdrawal movement amounts.
type LedgerAccount struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
