package services

import (
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
)

// NewServiceContainer wires up the application services against the given
// repositories. methodAccounts is the payment-method to ledger-account-name
// mapping; publisher may be nil to disable outbound notifications.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, methodAccounts map[string]string, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.UnitOfWork, repos.AccountRepo, repos.TransactionRepo, methodAccounts)
	linkageSvc := NewLinkageService(repos.UnitOfWork, repos.LinkageRepo)
	incomeSvc := NewIncomeService(repos.UnitOfWork, repos.IncomeRepo, repos.TransactionRepo, repos.WorkPaymentRepo, ledgerSvc, publisher)
	expenseSvc := NewExpenseService(repos.UnitOfWork, repos.ExpenseRepo, repos.TransactionRepo, repos.WorkRepo, ledgerSvc, linkageSvc, publisher)

	return &portssvc.ServiceContainer{
		Ledger:  ledgerSvc,
		Income:  incomeSvc,
		Expense: expenseSvc,
		Linkage: linkageSvc,
	}
}
