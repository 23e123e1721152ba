package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work is the persisted shape of a work row. Only the status column is
// touched by the finance engine.
type Work struct {
	WorkID string `db:"work_id"`
	Name   string `db:"name"`
	Status string `db:"status"`
	AuditFields
}

// WorkPaymentPlan is the persisted shape of a work payment plan row.
type WorkPaymentPlan struct {
	PlanID      string          `db:"plan_id"`
	WorkID      string          `db:"work_id"`
	TotalAgreed decimal.Decimal `db:"total_agreed"`
	TotalPaid   decimal.Decimal `db:"total_paid"`
	AuditFields
}

// WorkPaymentEntry is the persisted shape of a payment-applied side record.
type WorkPaymentEntry struct {
	EntryID  string          `db:"entry_id"`
	PlanID   string          `db:"plan_id"`
	IncomeID string          `db:"income_id"`
	Amount   decimal.Decimal `db:"amount"`
	Date     time.Time       `db:"date"`
	AuditFields
}
