package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ObraLedger/construction_finance_app/internal/apperrors"
	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
	"github.com/ObraLedger/construction_finance_app/internal/handlers"
	"github.com/ObraLedger/construction_finance_app/pkg/config"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error) {
	args := m.Called(ctx, req, creatorStaffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string, staffID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, expenseID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockExpenseService) ListUnpaidExpenses(ctx context.Context, workID *string, vendor *string) ([]domain.Expense, error) {
	args := m.Called(ctx, workID, vendor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpensesByStatus(ctx context.Context, status domain.PaymentStatus, workID *string) ([]domain.Expense, error) {
	args := m.Called(ctx, status, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockExpenseSvc *MockExpenseService
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockExpenseSvc = new(MockExpenseService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{}, &portssvc.ServiceContainer{
		Expense: s.mockExpenseSvc,
	})
}

func (s *ExpenseHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ExpenseHandlerTestSuite) TestCreateExpenseSuccess() {
	reqBody := dto.CreateExpenseRequest{
		Date:          "2025-03-10",
		Amount:        decimal.NewFromInt(300),
		Type:          "materials",
		PaymentMethod: "Chase Bank",
	}
	s.mockExpenseSvc.On("CreateExpense", mock.Anything, mock.Anything, "system").Return(&domain.Expense{
		ExpenseID:     "exp-1",
		Amount:        decimal.NewFromInt(300),
		Type:          domain.ExpenseTypeMaterials,
		PaymentMethod: "Chase Bank",
		PaymentStatus: domain.PaymentStatusUnpaid,
	}, nil)

	w := s.performRequest(http.MethodPost, "/api/v1/expenses", reqBody)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.ExpenseResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("exp-1", resp.ExpenseID)
	s.Equal("unpaid", resp.PaymentStatus)
}

func (s *ExpenseHandlerTestSuite) TestCreateExpenseInsufficientFundsMapsTo400() {
	reqBody := dto.CreateExpenseRequest{
		Date:          "2025-03-10",
		Amount:        decimal.NewFromInt(9999),
		Type:          "materials",
		PaymentMethod: "Chase Bank",
	}
	s.mockExpenseSvc.On("CreateExpense", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrInsufficientFunds)

	w := s.performRequest(http.MethodPost, "/api/v1/expenses", reqBody)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ExpenseHandlerTestSuite) TestCreateExpenseMissingFieldsMapTo400() {
	w := s.performRequest(http.MethodPost, "/api/v1/expenses", map[string]string{"notes": "no amount"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockExpenseSvc.AssertNotCalled(s.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ExpenseHandlerTestSuite) TestDeleteExpenseConflictMapsTo409() {
	s.mockExpenseSvc.On("DeleteExpense", mock.Anything, "exp-1", mock.Anything).Return(nil, apperrors.ErrConflict)

	w := s.performRequest(http.MethodDelete, "/api/v1/expenses/exp-1", nil)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *ExpenseHandlerTestSuite) TestDeleteExpenseNotFoundMapsTo404() {
	s.mockExpenseSvc.On("DeleteExpense", mock.Anything, "missing", mock.Anything).Return(nil, apperrors.ErrNotFound)

	w := s.performRequest(http.MethodDelete, "/api/v1/expenses/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ExpenseHandlerTestSuite) TestListUnpaidPassesQueryFilters() {
	workID := "work-1"
	vendor := "Home Depot"
	s.mockExpenseSvc.On("ListUnpaidExpenses", mock.Anything, &workID, &vendor).Return([]domain.Expense{}, nil)

	w := s.performRequest(http.MethodGet, "/api/v1/expenses/unpaid?workID=work-1&vendor=Home+Depot", nil)

	s.Equal(http.StatusOK, w.Code)
	s.mockExpenseSvc.AssertExpectations(s.T())
}

func (s *ExpenseHandlerTestSuite) TestListExpensesDefaultsToUnpaidStatus() {
	s.mockExpenseSvc.On("ListExpensesByStatus", mock.Anything, domain.PaymentStatusUnpaid, (*string)(nil)).Return([]domain.Expense{}, nil)

	w := s.performRequest(http.MethodGet, "/api/v1/expenses", nil)

	s.Equal(http.StatusOK, w.Code)
	s.mockExpenseSvc.AssertExpectations(s.T())
}

func (s *ExpenseHandlerTestSuite) TestStaffIDHeaderIsForwarded() {
	reqBody := dto.CreateExpenseRequest{
		Date:          "2025-03-10",
		Amount:        decimal.NewFromInt(10),
		Type:          "other",
		PaymentMethod: "Zelle",
	}
	s.mockExpenseSvc.On("CreateExpense", mock.Anything, mock.Anything, "staff-42").Return(&domain.Expense{ExpenseID: "exp-2"}, nil)

	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(reqBody))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Staff-ID", "staff-42")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	s.mockExpenseSvc.AssertExpectations(s.T())
}

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
