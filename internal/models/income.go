package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the persisted shape of an income row.
type Income struct {
	IncomeID       string          `db:"income_id"`
	Date           time.Time       `db:"date"`
	Amount         decimal.Decimal `db:"amount"`
	Type           string          `db:"type"`
	Notes          string          `db:"notes"`
	WorkID         *string         `db:"work_id"`
	StaffID        *string         `db:"staff_id"`
	PaymentMethod  string          `db:"payment_method"`
	PaymentDetails string          `db:"payment_details"`
	Verified       bool            `db:"verified"`
	PaymentPlanID  *string         `db:"payment_plan_id"` // legacy direct plan reference
	AuditFields
}
