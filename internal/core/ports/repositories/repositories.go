package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork      UnitOfWork
	AccountRepo     LedgerAccountRepositoryFacade
	TransactionRepo LedgerTransactionRepositoryFacade
	IncomeRepo      IncomeRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	WorkRepo        WorkRepositoryFacade
	WorkPaymentRepo WorkPaymentRepositoryFacade
	LinkageRepo     LinkageRepositoryFacade
}
