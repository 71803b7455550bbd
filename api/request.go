package api

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codeXAI06/ReliefLink/consts"
	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/score"
	"github.com/codeXAI06/ReliefLink/store"
	"github.com/codeXAI06/ReliefLink/utils"
)

// createRequest is the API for submitting a new help request. The
// scoring pipeline runs inline: extract signals, screen for spam, score
// priority, then look for duplicates among recent open requests. Every
// analysis step degrades to neutral output; a request is never rejected
// because the heuristics had nothing to say.
func (s *Server) createRequest(c *gin.Context) {
	var params struct {
		HelpType    schema.HelpType `json:"help_type"`
		Description string          `json:"description"`
		Urgency     schema.Urgency  `json:"urgency"`
		Latitude    float64         `json:"latitude"`
		Longitude   float64         `json:"longitude"`
		Address     string          `json:"address"`
		Phone       string          `json:"phone"`
		ContactName string          `json:"contact_name"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.HelpType == "" {
		params.HelpType = schema.HelpOther
	}
	if !schema.ValidHelpType(params.HelpType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidHelpType)
		return
	}
	if params.Urgency == "" {
		params.Urgency = schema.UrgencyModerate
	}
	if !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidUrgency)
		return
	}
	if !geo.ValidCoordinates(params.Latitude, params.Longitude) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		return
	}

	started := time.Now()
	signals := score.Extract(params.Description, extractConfig())

	recentByPhone, err := s.store.CountRecentByPhone(params.Phone, 24*time.Hour)
	if err != nil {
		log.WithError(err).Error("count recent requests by phone")
	}
	location := schema.Location{Latitude: params.Latitude, Longitude: params.Longitude}
	recentNearby, err := s.store.CountRecentNear(location, 1.0, 24*time.Hour)
	if err != nil {
		log.WithError(err).Error("count recent requests nearby")
	}
	flag := score.CheckFlag(params.Description, recentByPhone, recentNearby)

	address := params.Address
	if address == "" {
		if resolved, err := geo.ResolveAddress(location); err == nil {
			address = resolved
		}
	}

	request := schema.HelpRequest{
		ID:          uuid.New(),
		HelpType:    params.HelpType,
		Description: params.Description,
		Urgency:     params.Urgency,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		Address:     address,
		Phone:       params.Phone,
		ContactName: params.ContactName,
		Status:      schema.StatusRequested,

		DetectedType:       signals.DetectedType,
		DetectedConfidence: signals.Confidence,
		DetectedLanguage:   signals.DetectedLanguage,
		DistressScore:      signals.DistressScore,
		DistressIndicators: signals.DistressIndicators,
		VulnerableGroups:   signals.VulnerableGroups,
		ExtractedSupplies:  signals.ExtractedSupplies,
		Flagged:            flag.Flagged,
		FlagReason:         flag.Reason,
	}

	now := time.Now().UTC()
	request.CreatedAt = now
	priority := score.Compute(score.InputFromRequest(request), now)
	request.PriorityScore = priority.Score
	request.PriorityLabel = priority.Label
	request.PriorityReason = priority.Reason

	if err := s.store.CreateRequest(&request); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.AppendStatusLog(&schema.StatusLog{
		RequestID: request.ID,
		NewStatus: schema.StatusRequested,
		Notes:     "request created",
	}); err != nil {
		log.WithError(err).Error("append status log")
	}

	if open, err := s.store.ListOpenRequests(consts.DUPLICATE_WINDOW_HOURS * time.Hour); err != nil {
		log.WithError(err).Error("list open requests for duplicate check")
	} else if match := score.FindDuplicate(request, open, duplicateConfig()); match != nil {
		if err := s.store.MarkDuplicate(request.ID, match.RequestID, match.Similarity); err != nil {
			log.WithError(err).Error("mark duplicate")
		}
		request.DuplicateOfID = &match.RequestID
		request.DuplicateSimilarity = &match.Similarity
	}

	s.appendAILog(request.ID, "analyze_request", schema.AnalysisOutput{
		"detected_type":     signals.DetectedType,
		"distress_score":    signals.DistressScore,
		"vulnerable_groups": signals.VulnerableGroups,
		"priority_score":    priority.Score,
		"priority_label":    priority.Label,
		"flagged":           flag.Flagged,
	}, signals.Confidence, priority.Reason, started)

	s.enqueueBroadcastRequest(request)

	c.JSON(http.StatusCreated, request)
}

// listRequests is the public feed. Priority scores are recomputed at
// read time so aging and escalation show up without waiting for a
// write, and the page is re-sorted on the fresh scores.
func (s *Server) listRequests(c *gin.Context) {
	filter := store.RequestFilter{
		Status:   schema.RequestStatus(c.Query("status")),
		HelpType: schema.HelpType(c.Query("help_type")),
		Urgency:  schema.Urgency(c.Query("urgency")),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = offset
	}

	requests, total, err := s.store.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	now := time.Now().UTC()
	for i := range requests {
		if !requests[i].Status.Terminal() {
			result := score.Compute(score.InputFromRequest(requests[i]), now)
			requests[i].PriorityScore = result.Score
			requests[i].PriorityLabel = result.Label
			requests[i].PriorityReason = result.Reason
		}
		requests[i].Phone = utils.MaskPhone(requests[i].Phone)
		requests[i].TimeAgo = utils.TimeAgo(requests[i].CreatedAt, now)
	}

	sortFeed(requests, c.Query("sort"), c.Query("lat"), c.Query("lon"))

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    total,
	})
}

func urgencyRank(u schema.Urgency) int {
	switch u {
	case schema.UrgencyCritical:
		return 0
	case schema.UrgencyModerate:
		return 1
	default:
		return 2
	}
}

func sortFeed(requests []schema.HelpRequest, key, lat, lon string) {
	switch key {
	case "time":
		sort.SliceStable(requests, func(i, j int) bool {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		})
	case "urgency":
		sort.SliceStable(requests, func(i, j int) bool {
			return urgencyRank(requests[i].Urgency) < urgencyRank(requests[j].Urgency)
		})
	case "distance":
		latitude, latErr := strconv.ParseFloat(lat, 64)
		longitude, lonErr := strconv.ParseFloat(lon, 64)
		if latErr != nil || lonErr != nil {
			return
		}
		from := schema.Location{Latitude: latitude, Longitude: longitude}
		sort.SliceStable(requests, func(i, j int) bool {
			di := geo.Distance(from, schema.Location{Latitude: requests[i].Latitude, Longitude: requests[i].Longitude})
			dj := geo.Distance(from, schema.Location{Latitude: requests[j].Latitude, Longitude: requests[j].Longitude})
			return di < dj
		})
	default: // priority
		sort.SliceStable(requests, func(i, j int) bool {
			if requests[i].PriorityScore != requests[j].PriorityScore {
				return requests[i].PriorityScore > requests[j].PriorityScore
			}
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		})
	}
}

func (s *Server) getRequest(c *gin.Context) {
	request, done := s.loadRequest(c)
	if done {
		return
	}

	now := time.Now().UTC()
	if !request.Status.Terminal() {
		result := score.Compute(score.InputFromRequest(*request), now)
		request.PriorityScore = result.Score
		request.PriorityLabel = result.Label
		request.PriorityReason = result.Reason
	}
	request.TimeAgo = utils.TimeAgo(request.CreatedAt, now)

	c.JSON(http.StatusOK, request)
}

// updateRequestStatus is the API for the accept/progress/complete/cancel
// transitions. The store enforces the transition against the status the
// row holds right now, so the first writer wins and everyone else gets
// a conflict.
func (s *Server) updateRequestStatus(c *gin.Context) {
	request, done := s.loadRequest(c)
	if done {
		return
	}

	var params struct {
		Status   schema.RequestStatus `json:"status"`
		HelperID *uuid.UUID           `json:"helper_id"`
		Notes    string               `json:"notes"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Status == schema.StatusAccepted && params.HelperID == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	updated, err := s.store.UpdateRequestStatus(store.StatusChange{
		RequestID: request.ID,
		From:      request.Status,
		To:        params.Status,
		HelperID:  params.HelperID,
		ChangedBy: params.HelperID,
		Notes:     params.Notes,
	})
	if err != nil {
		switch err {
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition, err)
		case store.ErrRequestStateChanged:
			abortWithEncoding(c, http.StatusConflict, errorRequestStateChanged, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	switch params.Status {
	case schema.StatusAccepted:
		s.enqueueNotifyAccepted(*updated)
	case schema.StatusCompleted:
		if updated.HelperID != nil {
			if err := s.store.IncrementHelperCompleted(*updated.HelperID); err != nil {
				log.WithError(err).Error("increment helper completed count")
			}
		}
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) requestHistory(c *gin.Context) {
	request, done := s.loadRequest(c)
	if done {
		return
	}

	logs, err := s.store.ListStatusLogs(request.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": request.ID,
		"history":    logs,
	})
}

// explainRequest returns the ordered score breakdown for the "why this
// priority" panel. It recomputes with the same formula the feed uses;
// the persisted score and the explained score always agree.
func (s *Server) explainRequest(c *gin.Context) {
	request, done := s.loadRequest(c)
	if done {
		return
	}

	breakdown := score.Explain(score.InputFromRequest(*request), time.Now().UTC())

	c.JSON(http.StatusOK, gin.H{
		"request_id": request.ID,
		"breakdown":  breakdown,
	})
}

func (s *Server) listFlaggedRequests(c *gin.Context) {
	flagged := true
	requests, total, err := s.store.ListRequests(store.RequestFilter{Flagged: &flagged, Limit: 100})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    total,
	})
}

// loadRequest parses the route id and fetches the request. The bool
// reports whether the response was already written.
func (s *Server) loadRequest(c *gin.Context) (*schema.HelpRequest, bool) {
	id, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, true
	}

	request, err := s.store.GetRequest(id)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, true
	}

	return request, false
}

func (s *Server) appendAILog(requestID uuid.UUID, action string, output schema.AnalysisOutput, confidence float64, explanation string, started time.Time) {
	if err := s.store.AppendAILog(&schema.AILog{
		RequestID:        requestID,
		Action:           action,
		Output:           output,
		Confidence:       confidence,
		Explanation:      explanation,
		ProcessingTimeMS: time.Since(started).Milliseconds(),
	}); err != nil {
		log.WithError(err).Error("append ai log")
	}
}
