package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ObraLedger/construction_finance_app/internal/core/domain"
	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
	"github.com/ObraLedger/construction_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expense records.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to expense records.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/unpaid", h.listUnpaidExpenses)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, staffIDFromRequest(c))
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses lists expenses by stored payment status, defaulting to unpaid.
func (h *expenseHandler) listExpenses(c *gin.Context) {
	status := domain.PaymentStatus(c.DefaultQuery("status", string(domain.PaymentStatusUnpaid)))
	var workID *string
	if w := c.Query("workID"); w != "" {
		workID = &w
	}

	expenses, err := h.expenseService.ListExpensesByStatus(c.Request.Context(), status, workID)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// listUnpaidExpenses lists expenses still payable through a supplier invoice.
func (h *expenseHandler) listUnpaidExpenses(c *gin.Context) {
	var workID, vendor *string
	if w := c.Query("workID"); w != "" {
		workID = &w
	}
	if v := c.Query("vendor"); v != "" {
		vendor = &v
	}

	expenses, err := h.expenseService.ListUnpaidExpenses(c.Request.Context(), workID, vendor)
	if err != nil {
		respondError(c, err, "Failed to list unpaid expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	expenseID := c.Param("id")

	reverted, err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, staffIDFromRequest(c))
	if err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}

	resp := dto.DeleteExpenseResponse{}
	if reverted != nil {
		r := dto.ToLedgerTransactionResponse(reverted)
		resp.RevertedLedgerTransaction = &r
	}
	c.JSON(http.StatusOK, resp)
}
