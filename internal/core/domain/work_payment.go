package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkPaymentPlan aggregates the payments received against a work. TotalPaid
// is a derived sum recomputed whenever an entry is added or removed; it is a
// convenience figure, not a ledger balance.
type WorkPaymentPlan struct {
	PlanID      string          `json:"planID"`
	WorkID      string          `json:"workID"`
	TotalAgreed decimal.Decimal `json:"totalAgreed"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	AuditFields
}

// WorkPaymentEntry is the structured "payment applied" side record linking an
// invoice-payment income to a work payment plan.
type WorkPaymentEntry struct {
	EntryID  string          `json:"entryID"`
	PlanID   string          `json:"planID"`
	IncomeID string          `json:"incomeID"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	AuditFields
}
