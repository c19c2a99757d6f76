package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subho2010/money-records-api/internal/application/service"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/request"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List handles listing the user's transactions, newest first
func (h *LedgerHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions":    transactions,
		"account_balance": balance,
	})
}

// Post handles appending a transaction to the ledger
func (h *LedgerHandler) Post(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	transactionType, err := enum.ParseTransactionType(req.Type)
	if err != nil {
		response.BadRequest(c, "Type must be credit or debit")
		return
	}

	transaction, err := h.ledgerService.PostTransaction(c.Request.Context(), &service.PostTransactionInput{
		UserID:      *userID,
		Particulars: req.Particulars,
		Amount:      req.Amount,
		Type:        transactionType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", transaction)
}

// Recompute rebuilds the cached account balance from the transaction log
func (h *LedgerHandler) Recompute(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	balance, err := h.ledgerService.Recompute(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance recomputed successfully", gin.H{"account_balance": balance})
}

// ExportCSV streams the full ledger as a CSV download
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	filename, data, err := h.ledgerService.ExportCSV(c.Request.Context(), *userID, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
