package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/score"
	"github.com/codeXAI06/ReliefLink/store"
	"github.com/codeXAI06/ReliefLink/utils"
)

// helperRegister is the API for volunteer sign-up. The phone number is
// the identity; registering a taken phone is a conflict, not an upsert.
func (s *Server) helperRegister(c *gin.Context) {
	var params struct {
		Phone        string        `json:"phone"`
		Name         string        `json:"name"`
		Organization string        `json:"organization"`
		CanHelpWith  string        `json:"can_help_with"`
		Skills       schema.Skills `json:"skills"`
		HasVehicle   bool          `json:"has_vehicle"`
		MaxDistance  float64       `json:"max_distance_km"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Phone == "" || params.Name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	maxDistance := params.MaxDistance
	if maxDistance <= 0 {
		maxDistance = 10
	}

	helper := schema.Helper{
		Phone:         params.Phone,
		Name:          params.Name,
		Organization:  params.Organization,
		CanHelpWith:   params.CanHelpWith,
		Skills:        params.Skills,
		HasVehicle:    params.HasVehicle,
		MaxDistanceKM: maxDistance,
	}

	if err := s.store.CreateHelper(&helper); err != nil {
		if err == store.ErrPhoneTaken {
			abortWithEncoding(c, http.StatusConflict, errorPhoneTaken, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, helper)
}

// helperLogin looks a helper up by phone. No password: field teams
// share devices and the deployment trusts the phone number.
func (s *Server) helperLogin(c *gin.Context) {
	var params struct {
		Phone string `json:"phone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	helper, err := s.store.GetHelperByPhone(params.Phone)
	if err != nil {
		if err == store.ErrHelperNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorHelperNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.store.TouchHelper(helper.ID); err != nil {
		log.WithError(err).Error("touch helper")
	}

	c.JSON(http.StatusOK, helper)
}

// helperRequests is the "my work" view: everything this helper took on
// and has not finished, plus the completed total from the counter that
// updateRequestStatus maintains.
func (s *Server) helperRequests(c *gin.Context) {
	helper := c.MustGet("helper").(*schema.Helper)

	requests, _, err := s.store.ListRequests(store.RequestFilter{
		HelperID: &helper.ID,
		Limit:    100,
	})
	if shouldInterupt(err, c) {
		return
	}

	now := time.Now().UTC()
	active := make([]schema.HelpRequest, 0, len(requests))
	for _, request := range requests {
		if request.Status.Terminal() {
			continue
		}
		result := score.Compute(score.InputFromRequest(request), now)
		request.PriorityScore = result.Score
		request.PriorityLabel = result.Label
		request.PriorityReason = result.Reason
		request.TimeAgo = utils.TimeAgo(request.CreatedAt, now)
		active = append(active, request)
	}

	c.JSON(http.StatusOK, gin.H{
		"helper":          helper,
		"active_requests": active,
		"completed_count": helper.RequestsCompleted,
	})
}

// helperUpdateLocation refreshes the helper's geo profile. Called on
// every dashboard load so nearest-helper queries see current positions.
func (s *Server) helperUpdateLocation(c *gin.Context) {
	helper := c.MustGet("helper").(*schema.Helper)

	var params struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if !geo.ValidCoordinates(params.Latitude, params.Longitude) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		return
	}

	err := s.mongoStore.UpdateHelperLocation(helper.ID, helper.Phone, schema.Location{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
