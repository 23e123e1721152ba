package mapping

import (
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:       d.IncomeID,
		Date:           d.Date,
		Amount:         d.Amount,
		Type:           string(d.Type),
		Notes:          d.Notes,
		WorkID:         d.WorkID,
		StaffID:        d.StaffID,
		PaymentMethod:  d.PaymentMethod,
		PaymentDetails: d.PaymentDetails,
		Verified:       d.Verified,
		PaymentPlanID:  d.PaymentPlanID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:       m.IncomeID,
		Date:           m.Date,
		Amount:         m.Amount,
		Type:           domain.IncomeType(m.Type),
		Notes:          m.Notes,
		WorkID:         m.WorkID,
		StaffID:        m.StaffID,
		PaymentMethod:  m.PaymentMethod,
		PaymentDetails: m.PaymentDetails,
		Verified:       m.Verified,
		PaymentPlanID:  m.PaymentPlanID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
