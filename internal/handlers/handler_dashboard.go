package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getDashboard godoc
// @Summary Dashboard figures
// @Description Income, expense, balance and project counts over the whole workspace.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Security BearerAuth
// @Router /dashboard [get]
func getDashboard(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws.Dashboard())
}
