package delivery

import (
	"net/http"

	"findit-backend/internal/stats/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
	log          logrus.FieldLogger
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase, log logrus.FieldLogger) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase, log: log}
}

// GetStats returns public landing page counters
// GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUsecase.GetStats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to fetch statistics")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch statistics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
