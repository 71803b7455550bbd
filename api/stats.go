package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) stats(c *gin.Context) {
	stats, err := s.store.RequestStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

// statsSummary is the trimmed dashboard card: open workload and helper
// capacity only.
func (s *Server) statsSummary(c *gin.Context) {
	stats, err := s.store.RequestStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"open_requests":      stats.OpenCount,
		"open_escalated":     stats.OpenEscalated,
		"average_priority":   stats.AveragePriority,
		"completed_last_24h": stats.CompletedLast24H,
		"active_helpers":     stats.ActiveHelpers,
	})
}
