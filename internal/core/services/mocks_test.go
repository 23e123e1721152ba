package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portsrepo "github.com/ObraLedger/construction_finance_app/internal/core/ports/repositories"
)

// --- stub pgx.Tx ---

// stubTx satisfies pgx.Tx for service tests. The repositories are mocked, so
// no statement ever reaches it; only Begin (savepoints), Commit and Rollback
// matter.
type stubTx struct{}

var _ pgx.Tx = (*stubTx)(nil)

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return &stubTx{}, nil }
func (t *stubTx) Commit(ctx context.Context) error          { return nil }
func (t *stubTx) Rollback(ctx context.Context) error        { return nil }
func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                               { return nil }

// --- fake UnitOfWork ---

// fakeUnitOfWork runs the unit body directly with a stub transaction handle.
type fakeUnitOfWork struct{}

var _ portsrepo.UnitOfWork = (*fakeUnitOfWork)(nil)

func (u *fakeUnitOfWork) Begin(ctx context.Context) (pgx.Tx, error)       { return &stubTx{}, nil }
func (u *fakeUnitOfWork) Commit(ctx context.Context, tx pgx.Tx) error     { return nil }
func (u *fakeUnitOfWork) Rollback(ctx context.Context, tx pgx.Tx) error   { return nil }
func (u *fakeUnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, &stubTx{})
}

// --- Mock LedgerAccountRepository ---

type MockLedgerAccountRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*MockLedgerAccountRepository)(nil)

func (m *MockLedgerAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) ListAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerAccountRepository) FindActiveAccountByNameForUpdate(ctx context.Context, tx pgx.Tx, name string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, tx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, accountID, newBalance, updatedBy, now)
	return args.Error(0)
}

// --- Mock LedgerTransactionRepository ---

type MockLedgerTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerTransactionRepositoryFacade = (*MockLedgerTransactionRepository)(nil)

func (m *MockLedgerTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockLedgerTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	args := m.Called(ctx, tx, transactionID)
	return args.Error(0)
}

func (m *MockLedgerTransactionRepository) FindDepositByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, tx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerTransactionRepository) FindWithdrawalByExpenseIDInTx(ctx context.Context, tx pgx.Tx, expenseID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, tx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

// --- Mock IncomeRepository ---

type MockIncomeRepository struct {
	mock.Mock
}

var _ portsrepo.IncomeRepositoryFacade = (*MockIncomeRepository)(nil)

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomes(ctx context.Context, workID *string, limit int) ([]domain.Income, error) {
	args := m.Called(ctx, workID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) InsertIncomeInTx(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	args := m.Called(ctx, tx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncomeInTx(ctx context.Context, tx pgx.Tx, incomeID string) error {
	args := m.Called(ctx, tx, incomeID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, filter portsrepo.ExpenseListFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) InsertExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error {
	args := m.Called(ctx, tx, expenseID)
	return args.Error(0)
}

// --- Mock WorkRepository ---

type MockWorkRepository struct {
	mock.Mock
}

var _ portsrepo.WorkRepositoryFacade = (*MockWorkRepository)(nil)

func (m *MockWorkRepository) FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error) {
	args := m.Called(ctx, tx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkRepository) UpdateWorkStatusInTx(ctx context.Context, tx pgx.Tx, workID string, status domain.WorkStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, workID, status, updatedBy, now)
	return args.Error(0)
}

// --- Mock WorkPaymentRepository ---

type MockWorkPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.WorkPaymentRepositoryFacade = (*MockWorkPaymentRepository)(nil)

func (m *MockWorkPaymentRepository) FindPlanByID(ctx context.Context, planID string) (*domain.WorkPaymentPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkPaymentPlan), args.Error(1)
}

func (m *MockWorkPaymentRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.WorkPaymentEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockWorkPaymentRepository) DeleteEntryByIncomeIDInTx(ctx context.Context, tx pgx.Tx, incomeID string) (*domain.WorkPaymentEntry, error) {
	args := m.Called(ctx, tx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkPaymentEntry), args.Error(1)
}

func (m *MockWorkPaymentRepository) RecomputePlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, updatedBy string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, planID, updatedBy, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWorkPaymentRepository) AdjustPlanTotalInTx(ctx context.Context, tx pgx.Tx, planID string, delta decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, planID, delta, updatedBy, now)
	return args.Error(0)
}

// --- Mock LinkageRepository ---

type MockLinkageRepository struct {
	mock.Mock
}

var _ portsrepo.LinkageRepositoryFacade = (*MockLinkageRepository)(nil)

func (m *MockLinkageRepository) ListLinkedExpenseIDs(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *MockLinkageRepository) IsExpenseLinked(ctx context.Context, expenseID string) (bool, error) {
	args := m.Called(ctx, expenseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLinkageRepository) ClaimExpenseInTx(ctx context.Context, tx pgx.Tx, invoiceItemID string, expenseID string) error {
	args := m.Called(ctx, tx, invoiceItemID, expenseID)
	return args.Error(0)
}

func (m *MockLinkageRepository) ReleaseExpenseInTx(ctx context.Context, tx pgx.Tx, expenseID string) error {
	args := m.Called(ctx, tx, expenseID)
	return args.Error(0)
}

// --- Mock EventPublisher ---

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event any) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}
