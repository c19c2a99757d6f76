package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/application/service"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/request"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/response"
)

// DueHandler handles due record HTTP requests
type DueHandler struct {
	dueService *service.DueService
}

// NewDueHandler creates a new due handler
func NewDueHandler(dueService *service.DueService) *DueHandler {
	return &DueHandler{dueService: dueService}
}

// List handles listing the user's due records with the outstanding total
func (h *DueHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	records, err := h.dueService.ListDueRecords(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalDue, err := h.dueService.TotalDueBalance(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Due records retrieved successfully", gin.H{
		"due_records":       records,
		"total_due_balance": totalDue,
	})
}

// Create handles recording a new outstanding payment
func (h *DueHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDueRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expectedDate, err := time.ParseInLocation("2006-01-02", req.ExpectedPaymentDate, time.UTC)
	if err != nil {
		response.BadRequest(c, "Expected payment date must be in YYYY-MM-DD format")
		return
	}

	record, err := h.dueService.CreateDueRecord(c.Request.Context(), &service.CreateDueRecordInput{
		UserID:              *userID,
		CustomerName:        req.CustomerName,
		CustomerContact:     req.CustomerContact,
		CustomerCountryCode: req.CustomerCountryCode,
		ProductOrdered:      req.ProductOrdered,
		Quantity:            req.Quantity,
		AmountDue:           req.AmountDue,
		ExpectedPaymentDate: expectedDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Due record created successfully", record)
}

// MarkPaid handles settling a due record
func (h *DueHandler) MarkPaid(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid due record ID")
		return
	}

	record, err := h.dueService.MarkPaid(c.Request.Context(), *userID, recordID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Due record marked as paid", record)
}
