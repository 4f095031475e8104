package handlers

import (
	"net/http"

	catalogRepo "sweeply/database/repository/catalog"
	"sweeply/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only service and location catalog.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger}
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	categories, err := h.Catalog.GetCategoriesWithServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetServices: failed to fetch catalog", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetRegions handles GET /api/regions.
func (h *CatalogHandler) GetRegions(c *gin.Context) {
	regions, err := h.Catalog.GetRegions(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetRegions: failed to fetch regions", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// GetSuburbs handles GET /api/suburbs?region_id=.
func (h *CatalogHandler) GetSuburbs(c *gin.Context) {
	regionID := c.Query("region_id")
	if regionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing region",
			"message": "region_id query parameter is required",
		})
		return
	}

	suburbs, err := h.Catalog.GetSuburbsByRegion(c.Request.Context(), regionID)
	if err != nil {
		h.Logger.Error("GetSuburbs: failed to fetch suburbs", zap.String("regionID", regionID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suburbs)
}
