package handlers

import (
	"net/http"

	"sweeply/middleware"
	"sweeply/models"
	"sweeply/services/booking"
	"sweeply/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking draft flow: quoting, draft steps,
// availability and cleaner selection.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CalculateQuote handles POST /api/pricing/calculate.
func (h *BookingHandler) CalculateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.BookingSvc.CalculateQuote(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// UpsertDraft handles PUT /api/bookings/draft.
func (h *BookingHandler) UpsertDraft(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.BookingSvc.UpsertDraft(c.Request.Context(), middleware.SessionID(c), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetDraft handles GET /api/bookings/draft.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.BookingSvc.GetDraft(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelDraft handles DELETE /api/bookings/draft.
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	draft, err := h.BookingSvc.CancelDraft(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SelectCleaner handles POST /api/bookings/select-cleaner.
func (h *BookingHandler) SelectCleaner(c *gin.Context) {
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	result, err := h.BookingSvc.AssignCleaner(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("SelectCleaner: assignment failed", zap.String("bookingID", req.BookingID), zap.Error(err))
		status := utils.HTTPStatus(err)
		msg := err.Error()
		if status >= http.StatusInternalServerError {
			msg = "internal error"
		}
		c.JSON(status, gin.H{"ok": false, "error": msg})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckAvailability handles POST /api/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req struct {
		SuburbID string `json:"suburb_id" binding:"required"`
		Date     string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slots, err := h.BookingSvc.CheckAvailability(c.Request.Context(), req.SuburbID, req.Date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
