package handlers

import (
	"net/http"

	"sweeply/services/payment"
	"sweeply/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment handoff endpoints.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
	Logger     *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc, Logger: logger}
}

// InitiatePayment handles POST /api/payments/initiate.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.PaymentSvc.InitiatePayment(c.Request.Context(), req.BookingID)
	if err != nil {
		h.Logger.Error("InitiatePayment: failed", zap.String("bookingID", req.BookingID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// VerifyPayment handles GET /api/payments/verify?reference=.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing reference",
			"message": "reference query parameter is required",
		})
		return
	}

	result, err := h.PaymentSvc.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		h.Logger.Error("VerifyPayment: failed", zap.String("reference", reference), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
