package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/application/service"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/request"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// List handles listing the user's receipts, newest first
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved successfully", receipts)
}

// NextNumber previews the next receipt number for the user
func (h *ReceiptHandler) NextNumber(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	number, err := h.receiptService.GenerateReceiptNumber(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt number generated", gin.H{"receipt_number": number})
}

// Create handles composing and persisting a new receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentType, err := enum.ParsePaymentType(req.PaymentType)
	if err != nil {
		response.BadRequest(c, "Payment type must be cash, card or online")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", req.Date, time.UTC)
		if err != nil {
			response.BadRequest(c, "Date must be in YYYY-MM-DD format")
			return
		}
	}

	items := make([]service.ReceiptItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.ReceiptItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		UserID:              *userID,
		Date:                date,
		CustomerName:        req.CustomerName,
		CustomerContact:     req.CustomerContact,
		CustomerCountryCode: req.CustomerCountryCode,
		PaymentType:         paymentType,
		CardNumber:          req.CardNumber,
		PhoneNumber:         req.PhoneNumber,
		Notes:               req.Notes,
		Items:               items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles fetching a single receipt with its items
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print renders the printable HTML document for a receipt
func (h *ReceiptHandler) Print(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	doc, err := h.receiptService.RenderReceiptHTML(c.Request.Context(), *userID, receiptID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
