package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeXAI06/ReliefLink/consts"
	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/score"
)

// Stateless analysis endpoints. They run the same heuristics the create
// pipeline runs, but persist nothing; intake tools use them to preview
// how a message would be scored.

func (s *Server) aiAnalyze(c *gin.Context) {
	var params struct {
		Description string          `json:"description"`
		HelpType    schema.HelpType `json:"help_type"`
		Urgency     schema.Urgency  `json:"urgency"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Urgency == "" {
		params.Urgency = schema.UrgencyModerate
	}

	signals := score.Extract(params.Description, extractConfig())

	request := schema.HelpRequest{
		HelpType:           params.HelpType,
		Urgency:            params.Urgency,
		DetectedType:       signals.DetectedType,
		DistressScore:      signals.DistressScore,
		VulnerableGroups:   signals.VulnerableGroups,
		CreatedAt:          time.Now().UTC(),
		DistressIndicators: signals.DistressIndicators,
	}
	priority := score.Compute(score.InputFromRequest(request), time.Now().UTC())

	c.JSON(http.StatusOK, gin.H{
		"signals":  signals,
		"priority": priority,
	})
}

func (s *Server) aiPriority(c *gin.Context) {
	var params struct {
		Urgency          schema.Urgency  `json:"urgency"`
		HelpType         schema.HelpType `json:"help_type"`
		DistressScore    float64         `json:"distress_score"`
		VulnerableGroups []string        `json:"vulnerable_groups"`
		EscalationLevel  int             `json:"escalation_level"`
		CreatedAt        *time.Time      `json:"created_at"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Urgency == "" {
		params.Urgency = schema.UrgencyModerate
	}

	now := time.Now().UTC()
	createdAt := now
	if params.CreatedAt != nil {
		createdAt = *params.CreatedAt
	}

	result := score.Compute(score.Input{
		Urgency:          params.Urgency,
		HelpType:         params.HelpType,
		DistressScore:    params.DistressScore,
		VulnerableGroups: len(params.VulnerableGroups),
		EscalationLevel:  params.EscalationLevel,
		CreatedAt:        createdAt,
	}, now)

	c.JSON(http.StatusOK, result)
}

func (s *Server) aiCategorize(c *gin.Context) {
	var params struct {
		Description string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	signals := score.Extract(params.Description, extractConfig())

	c.JSON(http.StatusOK, gin.H{
		"detected_type":     signals.DetectedType,
		"confidence":        signals.Confidence,
		"detected_language": signals.DetectedLanguage,
	})
}

func (s *Server) aiCheckDuplicate(c *gin.Context) {
	var params struct {
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if !geo.ValidCoordinates(params.Latitude, params.Longitude) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		return
	}

	open, err := s.store.ListOpenRequests(consts.DUPLICATE_WINDOW_HOURS * time.Hour)
	if shouldInterupt(err, c) {
		return
	}

	probe := schema.HelpRequest{
		Description: params.Description,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		CreatedAt:   time.Now().UTC(),
	}
	match := score.FindDuplicate(probe, open, duplicateConfig())

	if match == nil {
		c.JSON(http.StatusOK, gin.H{"duplicate": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"duplicate":  true,
		"request_id": match.RequestID,
		"similarity": match.Similarity,
		"reasons":    match.Reasons,
	})
}

// aiLogs returns the decision trail recorded for one request, oldest
// first. Operators use it to audit why a request was scored or flagged
// the way it was.
func (s *Server) aiLogs(c *gin.Context) {
	request, done := s.loadRequest(c)
	if done {
		return
	}

	logs, err := s.store.ListAILogs(request.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": request.ID,
		"logs":       logs,
	})
}
