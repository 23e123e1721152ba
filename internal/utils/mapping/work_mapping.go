package mapping

import (
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/models"
)

// ToDomainWork converts a model Work to a domain Work
func ToDomainWork(m models.Work) domain.Work {
	return domain.Work{
		WorkID:      m.WorkID,
		Name:        m.Name,
		Status:      domain.WorkStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkPaymentPlan converts a model WorkPaymentPlan to a domain WorkPaymentPlan
func ToDomainWorkPaymentPlan(m models.WorkPaymentPlan) domain.WorkPaymentPlan {
	return domain.WorkPaymentPlan{
		PlanID:      m.PlanID,
		WorkID:      m.WorkID,
		TotalAgreed: m.TotalAgreed,
		TotalPaid:   m.TotalPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWorkPaymentEntry converts a domain WorkPaymentEntry to a model WorkPaymentEntry
func ToModelWorkPaymentEntry(d domain.WorkPaymentEntry) models.WorkPaymentEntry {
	return models.WorkPaymentEntry{
		EntryID:     d.EntryID,
		PlanID:      d.PlanID,
		IncomeID:    d.IncomeID,
		Amount:      d.Amount,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkPaymentEntry converts a model WorkPaymentEntry to a domain WorkPaymentEntry
func ToDomainWorkPaymentEntry(m models.WorkPaymentEntry) domain.WorkPaymentEntry {
	return domain.WorkPaymentEntry{
		EntryID:     m.EntryID,
		PlanID:      m.PlanID,
		IncomeID:    m.IncomeID,
		Amount:      m.Amount,
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
