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

// ledgerHandler handles HTTP requests related to ledger accounts and movements.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/accounts", h.listAccounts)
		ledger.GET("/accounts/:id", h.getAccount)
		ledger.GET("/accounts/:id/transactions", h.listAccountTransactions)
		ledger.POST("/credit-card-payments", h.payCreditCard)
	}
}

func (h *ledgerHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

func (h *ledgerHandler) getAccount(c *gin.Context) {
	account, err := h.ledgerService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *ledgerHandler) listAccountTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	txns, err := h.ledgerService.ListAccountTransactions(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err, "Failed to list account transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerTransactionResponses(txns))
}

func (h *ledgerHandler) payCreditCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditCardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayCreditCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.PayCreditCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record credit card payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerTransactionResponse(txn))
}
