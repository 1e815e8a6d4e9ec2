package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *dashboard.Stats
}

func NewDashboardHandler(stats *dashboard.Stats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// GET /api/dashboard/today
func (h *DashboardHandler) Today(c *gin.Context) {
	out, err := h.stats.Execute(c.Request.Context(), currentPetShopID(c))
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao calcular estatísticas do dia")
		return
	}

	c.JSON(http.StatusOK, out)
}
