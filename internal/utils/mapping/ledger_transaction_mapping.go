package mapping

import (
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	"github.com/ObraLedger/construction_finance_app/internal/models"
)

// ToModelLedgerTransaction converts a domain LedgerTransaction to a model LedgerTransaction
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID:       d.TransactionID,
		AccountID:           d.AccountID,
		Type:                models.LedgerTransactionType(d.Type),
		Amount:              d.Amount,
		Date:                d.Date,
		Description:         d.Description,
		Category:            string(d.Category),
		BalanceAfter:        d.BalanceAfter,
		RelatedIncomeID:     d.RelatedIncomeID,
		RelatedExpenseID:    d.RelatedExpenseID,
		RelatedCreditCardID: d.RelatedCreditCardID,
		Notes:               d.Notes,
		CreatedByStaffID:    d.CreatedByStaffID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerTransaction converts a model LedgerTransaction to a domain LedgerTransaction
func ToDomainLedgerTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionID:       m.TransactionID,
		AccountID:           m.AccountID,
		Type:                domain.LedgerTransactionType(m.Type),
		Amount:              m.Amount,
		Date:                m.Date,
		Description:         m.Description,
		Category:            domain.TransactionCategory(m.Category),
		BalanceAfter:        m.BalanceAfter,
		RelatedIncomeID:     m.RelatedIncomeID,
		RelatedExpenseID:    m.RelatedExpenseID,
		RelatedCreditCardID: m.RelatedCreditCardID,
		Notes:               m.Notes,
		CreatedByStaffID:    m.CreatedByStaffID,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerTransactionSlice converts a slice of model LedgerTransactions to domain LedgerTransactions
func ToDomainLedgerTransactionSlice(ms []models.LedgerTransaction) []domain.LedgerTransaction {
	ds := make([]domain.LedgerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerTransaction(m)
	}
	return ds
}
