package pgsql

import (
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:      &BaseRepository{Pool: dbPool},
		AccountRepo:     newPgxLedgerAccountRepository(dbPool),
		TransactionRepo: newPgxLedgerTransactionRepository(dbPool),
		IncomeRepo:      newPgxIncomeRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		WorkRepo:        newPgxWorkRepository(dbPool),
		WorkPaymentRepo: newPgxWorkPaymentRepository(dbPool),
		LinkageRepo:     newPgxLinkageRepository(dbPool),
	}
}
