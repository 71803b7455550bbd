package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/score"
)

// helperRecommendations ranks open requests for one helper: closest,
// best skill fit, highest priority first. The helper's position comes
// from the mongo geo profile; no profile yet means no recommendations
// can be computed.
func (s *Server) helperRecommendations(c *gin.Context) {
	helper := c.MustGet("helper").(*schema.Helper)

	location, err := s.mongoStore.GetHelperLocation(helper.ID)
	if shouldInterupt(err, c) {
		return
	}
	if location == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownHelperLocation)
		return
	}

	open, err := s.store.ListOpenRequests(0)
	if shouldInterupt(err, c) {
		return
	}

	now := time.Now().UTC()
	for i := range open {
		result := score.Compute(score.InputFromRequest(open[i]), now)
		open[i].PriorityScore = result.Score
		open[i].PriorityLabel = result.Label
		open[i].PriorityReason = result.Reason
	}

	cfg := matchConfig()
	if helper.MaxDistanceKM > 0 && helper.MaxDistanceKM < cfg.MaxDistanceKM {
		cfg.MaxDistanceKM = helper.MaxDistanceKM
	}
	if count, err := strconv.Atoi(c.Query("count")); err == nil && count > 0 {
		cfg.TopN = count
	}

	matches := score.Rank(score.HelperContext{
		Helper:   *helper,
		Location: *location,
	}, open, cfg)

	c.JSON(http.StatusOK, gin.H{
		"helper_id":       helper.ID,
		"recommendations": matches,
	})
}
