package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/subho2010/money-records-api/internal/application/service"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/request"
	"github.com/subho2010/money-records-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles profile and verification HTTP requests
type ProfileHandler struct {
	userService         *service.UserService
	verificationService *service.VerificationService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService *service.UserService, verificationService *service.VerificationService) *ProfileHandler {
	return &ProfileHandler{
		userService:         userService,
		verificationService: verificationService,
	}
}

// Get handles fetching the current user's profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", user)
}

// Update handles profile updates
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), *userID, &service.UpdateProfileInput{
		Name:             req.Name,
		StoreName:        req.StoreName,
		StoreAddress:     req.StoreAddress,
		StoreContact:     req.StoreContact,
		StoreCountryCode: req.StoreCountryCode,
		CurrencySymbol:   req.CurrencySymbol,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", user)
}

// IssueEmailCode handles sending an email verification code
func (h *ProfileHandler) IssueEmailCode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.IssueEmailCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	code, err := h.verificationService.IssueEmailCode(c.Request.Context(), *userID, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Verification code sent", gin.H{"expires_at": code.ExpiresAt})
}

// ConfirmEmailCode handles confirming an email verification code
func (h *ProfileHandler) ConfirmEmailCode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ConfirmEmailCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.verificationService.CheckEmailCode(c.Request.Context(), *userID, req.Email, req.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email verified successfully", nil)
}

// IssuePhoneCode handles sending a phone verification code
func (h *ProfileHandler) IssuePhoneCode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.IssuePhoneCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	code, err := h.verificationService.IssuePhoneCode(c.Request.Context(), *userID, req.CountryCode, req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Verification code sent", gin.H{"expires_at": code.ExpiresAt})
}

// ConfirmPhoneCode handles confirming a phone verification code
func (h *ProfileHandler) ConfirmPhoneCode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ConfirmPhoneCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.verificationService.CheckPhoneCode(c.Request.Context(), *userID, req.CountryCode, req.Phone, req.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Phone verified successfully", nil)
}
