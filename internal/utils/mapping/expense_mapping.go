package mapping

import (
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:             d.ExpenseID,
		Date:                  d.Date,
		Amount:                d.Amount,
		Type:                  string(d.Type),
		Notes:                 d.Notes,
		WorkID:                d.WorkID,
		StaffID:               d.StaffID,
		Vendor:                d.Vendor,
		PaymentMethod:         d.PaymentMethod,
		PaymentDetails:        d.PaymentDetails,
		Verified:              d.Verified,
		PaymentStatus:         string(d.PaymentStatus),
		PaidDate:              d.PaidDate,
		SupplierInvoiceItemID: d.SupplierInvoiceItemID,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:             m.ExpenseID,
		Date:                  m.Date,
		Amount:                m.Amount,
		Type:                  domain.ExpenseType(m.Type),
		Notes:                 m.Notes,
		WorkID:                m.WorkID,
		StaffID:               m.StaffID,
		Vendor:                m.Vendor,
		PaymentMethod:         m.PaymentMethod,
		PaymentDetails:        m.PaymentDetails,
		Verified:              m.Verified,
		PaymentStatus:         domain.PaymentStatus(m.PaymentStatus),
		PaidDate:              m.PaidDate,
		SupplierInvoiceItemID: m.SupplierInvoiceItemID,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
