package handlers

import (
	"net/http"

	catalogRepo "sweeply/database/repository/catalog"
	"sweeply/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteHandler serves the marketing quote funnel.
type QuoteHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Catalog: catalog, Logger: logger}
}

// SubmitQuote handles POST /api/quotes. Persistence is best effort: a
// storage failure is logged but the customer is still acknowledged, so the
// marketing funnel never blocks on an internal fault.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Suburb  string `json:"suburb"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	lead := &models.Lead{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Suburb:  req.Suburb,
		Message: req.Message,
	}
	if err := h.Catalog.CreateLead(c.Request.Context(), lead); err != nil {
		h.Logger.Error("SubmitQuote: failed to store lead", zap.Error(err))
	}

	c.JSON(http.StatusAccepted, gin.H{"ok": true})
}
