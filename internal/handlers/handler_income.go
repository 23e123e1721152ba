package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/ObraLedger/construction_finance_app/internal/dto"
	"github.com/ObraLedger/construction_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to income records.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

// registerIncomeRoutes registers routes related to income records.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), req, staffIDFromRequest(c))
	if err != nil {
		respondError(c, err, "Failed to create income")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

func (h *incomeHandler) listIncomes(c *gin.Context) {
	var workID *string
	if w := c.Query("workID"); w != "" {
		workID = &w
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	incomes, err := h.incomeService.ListIncomes(c.Request.Context(), workID, limit)
	if err != nil {
		respondError(c, err, "Failed to list incomes")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponses(incomes))
}

func (h *incomeHandler) deleteIncome(c *gin.Context) {
	incomeID := c.Param("id")

	reverted, err := h.incomeService.DeleteIncome(c.Request.Context(), incomeID, staffIDFromRequest(c))
	if err != nil {
		respondError(c, err, "Failed to delete income")
		return
	}

	resp := dto.DeleteIncomeResponse{}
	if reverted != nil {
		r := dto.ToLedgerTransactionResponse(reverted)
		resp.RevertedLedgerTransaction = &r
	}
	c.JSON(http.StatusOK, resp)
}
