package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/ObraLedger/construction_finance_app/internal/core/services"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockLedgerAccountRepository
	mockTxnRepo     *MockLedgerTransactionRepository
	service         portssvc.LedgerSvcFacade
	ctx             context.Context
	bankAccount     domain.LedgerAccount
	testDate        time.Time
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockLedgerAccountRepository)
	s.mockTxnRepo = new(MockLedgerTransactionRepository)
	s.service = services.NewLedgerService(&fakeUnitOfWork{}, s.mockAccountRepo, s.mockTxnRepo, map[string]string{
		"Chase Bank": "Chase Bank",
		"Efectivo":   "Caja Chica",
	})
	s.ctx = context.Background()
	s.bankAccount = domain.LedgerAccount{
		AccountID:      uuid.NewString(),
		Name:           "Chase Bank",
		CurrentBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
	s.testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (s *LedgerServiceTestSuite) TestResolveAccount() {
	s.Equal("Chase Bank", s.service.ResolveAccount("Chase Bank"))
	s.Equal("Caja Chica", s.service.ResolveAccount("Efectivo"))
	s.Equal("", s.service.ResolveAccount("Zelle"))
}

func (s *LedgerServiceTestSuite) TestRecordDepositIncreasesBalance() {
	tx := &stubTx{}
	incomeID := uuid.NewString()
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Chase Bank").Return(&s.bankAccount, nil)
	s.mockAccountRepo.On("SetAccountBalanceInTx", s.ctx, tx, s.bankAccount.AccountID, decimal.NewFromInt(1250), mock.Anything, mock.Anything).Return(nil)
	s.mockTxnRepo.On("InsertTransactionInTx", s.ctx, tx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.Type == domain.Deposit &&
			txn.Category == domain.CategoryIncome &&
			txn.Amount.Equal(decimal.NewFromInt(250)) &&
			txn.BalanceAfter.Equal(decimal.NewFromInt(1250)) &&
			txn.RelatedIncomeID != nil && *txn.RelatedIncomeID == incomeID
	})).Return(nil)

	txn, err := s.service.RecordDeposit(s.ctx, tx, "Chase Bank", decimal.NewFromInt(250), s.testDate, "Income (work_payment)", domain.TransactionLink{IncomeID: &incomeID})

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.True(txn.BalanceAfter.Equal(decimal.NewFromInt(1250)))
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordDepositRejectsNonPositiveAmount() {
	txn, err := s.service.RecordDeposit(s.ctx, &stubTx{}, "Chase Bank", decimal.Zero, s.testDate, "", domain.TransactionLink{})

	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindActiveAccountByNameForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordDepositUnmappedMethodIsNoOp() {
	txn, err := s.service.RecordDeposit(s.ctx, &stubTx{}, "Zelle", decimal.NewFromInt(100), s.testDate, "", domain.TransactionLink{})

	s.NoError(err)
	s.Nil(txn)
	s.mockAccountRepo.AssertNotCalled(s.T(), "FindActiveAccountByNameForUpdate", mock.Anything, mock.Anything, mock.Anything)
	s.mockTxnRepo.AssertNotCalled(s.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordDepositMissingAccountIsNoOp() {
	tx := &stubTx{}
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Chase Bank").Return(nil, apperrors.ErrNotFound)

	txn, err := s.service.RecordDeposit(s.ctx, tx, "Chase Bank", decimal.NewFromInt(100), s.testDate, "", domain.TransactionLink{})

	s.NoError(err)
	s.Nil(txn)
	s.mockTxnRepo.AssertNotCalled(s.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordWithdrawalInsufficientFunds() {
	tx := &stubTx{}
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Chase Bank").Return(&s.bankAccount, nil)

	txn, err := s.service.RecordWithdrawal(s.ctx, tx, "Chase Bank", decimal.NewFromInt(5000), s.testDate, "", domain.TransactionLink{}, false)

	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SetAccountBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockTxnRepo.AssertNotCalled(s.T(), "InsertTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordWithdrawalSkipBalanceCheckAllowsOverdraft() {
	tx := &stubTx{}
	expenseID := uuid.NewString()
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Caja Chica").Return(&domain.LedgerAccount{
		AccountID:      "caja-1",
		Name:           "Caja Chica",
		CurrentBalance: decimal.NewFromInt(50),
		IsActive:       true,
	}, nil)
	s.mockAccountRepo.On("SetAccountBalanceInTx", s.ctx, tx, "caja-1", decimal.NewFromInt(-150), mock.Anything, mock.Anything).Return(nil)
	s.mockTxnRepo.On("InsertTransactionInTx", s.ctx, tx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.Type == domain.Withdrawal &&
			txn.Category == domain.CategoryExpense &&
			txn.BalanceAfter.Equal(decimal.NewFromInt(-150))
	})).Return(nil)

	txn, err := s.service.RecordWithdrawal(s.ctx, tx, "Efectivo", decimal.NewFromInt(200), s.testDate, "Expense (materials)", domain.TransactionLink{ExpenseID: &expenseID}, true)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.True(txn.BalanceAfter.IsNegative())
}

func (s *LedgerServiceTestSuite) TestRecordCreditCardPaymentCategory() {
	tx := &stubTx{}
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Chase Bank").Return(&s.bankAccount, nil)
	s.mockAccountRepo.On("SetAccountBalanceInTx", s.ctx, tx, s.bankAccount.AccountID, decimal.NewFromInt(700), mock.Anything, mock.Anything).Return(nil)
	s.mockTxnRepo.On("InsertTransactionInTx", s.ctx, tx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.Category == domain.CategoryCreditCardPayment &&
			txn.RelatedCreditCardID != nil &&
			txn.Description == "Credit card payment: Amex Gold" &&
			txn.Notes == "Invoice: INV-42"
	})).Return(nil)

	txn, err := s.service.RecordCreditCardPayment(s.ctx, tx, "Chase Bank", "Amex Gold", decimal.NewFromInt(300), s.testDate, "INV-42")

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.Equal(domain.CategoryCreditCardPayment, txn.Category)
}

func (s *LedgerServiceTestSuite) TestReverseDepositBlocksNegativeBalance() {
	tx := &stubTx{}
	txn := domain.LedgerTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     s.bankAccount.AccountID,
		Type:          domain.Deposit,
		Amount:        decimal.NewFromInt(2000),
	}
	s.mockAccountRepo.On("FindAccountByIDForUpdate", s.ctx, tx, s.bankAccount.AccountID).Return(&s.bankAccount, nil)

	err := s.service.ReverseTransaction(s.ctx, tx, txn)

	s.ErrorIs(err, apperrors.ErrNegativeBalance)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SetAccountBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockTxnRepo.AssertNotCalled(s.T(), "DeleteTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestReverseWithdrawalCreditsBack() {
	tx := &stubTx{}
	txn := domain.LedgerTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     s.bankAccount.AccountID,
		Type:          domain.Withdrawal,
		Amount:        decimal.NewFromInt(400),
	}
	s.mockAccountRepo.On("FindAccountByIDForUpdate", s.ctx, tx, s.bankAccount.AccountID).Return(&s.bankAccount, nil)
	s.mockAccountRepo.On("SetAccountBalanceInTx", s.ctx, tx, s.bankAccount.AccountID, decimal.NewFromInt(1400), mock.Anything, mock.Anything).Return(nil)
	s.mockTxnRepo.On("DeleteTransactionInTx", s.ctx, tx, txn.TransactionID).Return(nil)

	err := s.service.ReverseTransaction(s.ctx, tx, txn)

	s.NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestPayCreditCardRejectsUntrackedMethod() {
	txn, err := s.service.PayCreditCard(s.ctx, dto.CreateCreditCardPaymentRequest{
		FromPaymentMethod: "Zelle",
		CreditCardName:    "Amex Gold",
		Amount:            decimal.NewFromInt(100),
		Date:              "2025-03-10",
	})

	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestPayCreditCardMissingAccountFails() {
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", mock.Anything, mock.Anything, "Chase Bank").Return(nil, apperrors.ErrNotFound)

	txn, err := s.service.PayCreditCard(s.ctx, dto.CreateCreditCardPaymentRequest{
		FromPaymentMethod: "Chase Bank",
		CreditCardName:    "Amex Gold",
		Amount:            decimal.NewFromInt(100),
		Date:              "2025-03-10",
	})

	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestPayCreditCardRejectsBadDate() {
	txn, err := s.service.PayCreditCard(s.ctx, dto.CreateCreditCardPaymentRequest{
		FromPaymentMethod: "Chase Bank",
		CreditCardName:    "Amex Gold",
		Amount:            decimal.NewFromInt(100),
		Date:              "10/03/2025",
	})

	s.Nil(txn)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestListAccountTransactionsDefaultLimit() {
	s.mockTxnRepo.On("ListTransactionsByAccountID", s.ctx, s.bankAccount.AccountID, 50).Return([]domain.LedgerTransaction{}, nil)

	txns, err := s.service.ListAccountTransactions(s.ctx, s.bankAccount.AccountID, 0)

	s.NoError(err)
	s.Empty(txns)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestGetAccountByIDPropagatesNotFound() {
	s.mockAccountRepo.On("FindAccountByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	account, err := s.service.GetAccountByID(s.ctx, "missing")

	s.Nil(account)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestLockAccountErrorPropagates() {
	tx := &stubTx{}
	dbErr := errors.New("connection reset")
	s.mockAccountRepo.On("FindActiveAccountByNameForUpdate", s.ctx, tx, "Chase Bank").Return(nil, dbErr)

	txn, err := s.service.RecordDeposit(s.ctx, tx, "Chase Bank", decimal.NewFromInt(10), s.testDate, "", domain.TransactionLink{})

	s.Nil(txn)
	s.ErrorIs(err, dbErr)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
