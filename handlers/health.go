package handlers

import (
	"net/http"

	"sweeply/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /healthz and GET /api/health. It reports the
// latest health snapshot: 200 when every check passes, 503 otherwise.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
