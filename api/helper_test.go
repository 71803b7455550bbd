package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/store"
)

func TestHelperRegisterRejectsTakenPhone(t *testing.T) {
	s, a, _, ctl := testServer(t)
	defer ctl.Finish()

	a.EXPECT().CreateHelper(gomock.Any()).Return(store.ErrPhoneTaken).Times(1)

	router := gin.New()
	router.POST("/", s.helperRegister)

	body, _ := json.Marshal(map[string]interface{}{
		"phone": "9841000000",
		"name":  "Asha",
	})
	req := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1100), resp.Code)
}

func TestHelperLogin(t *testing.T) {
	s, a, _, ctl := testServer(t)
	defer ctl.Finish()

	helperID := uuid.New()
	a.EXPECT().GetHelperByPhone("9841000000").Return(&schema.Helper{
		ID:    helperID,
		Phone: "9841000000",
		Name:  "Asha",
	}, nil).Times(1)
	a.EXPECT().TouchHelper(helperID).Return(nil).Times(1)

	router := gin.New()
	router.POST("/login", s.helperLogin)

	body, _ := json.Marshal(map[string]interface{}{"phone": "9841000000"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp schema.Helper
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, helperID, resp.ID)
}

func TestHelperActiveRequests(t *testing.T) {
	s, a, _, ctl := testServer(t)
	defer ctl.Finish()

	helperID := uuid.New()
	a.EXPECT().GetHelper(helperID).Return(&schema.Helper{
		ID:                helperID,
		Phone:             "9841000000",
		RequestsCompleted: 4,
	}, nil).Times(1)
	a.EXPECT().TouchHelper(helperID).Return(nil).Times(1)

	now := time.Now().UTC()
	accepted := schema.HelpRequest{
		ID:        uuid.New(),
		HelpType:  schema.HelpFood,
		Urgency:   schema.UrgencyModerate,
		Status:    schema.StatusAccepted,
		HelperID:  &helperID,
		CreatedAt: now.Add(-2 * time.Hour),
	}
	completed := schema.HelpRequest{
		ID:        uuid.New(),
		HelpType:  schema.HelpWater,
		Urgency:   schema.UrgencyLow,
		Status:    schema.StatusCompleted,
		HelperID:  &helperID,
		CreatedAt: now.Add(-26 * time.Hour),
	}
	a.EXPECT().ListRequests(store.RequestFilter{
		HelperID: &helperID,
		Limit:    100,
	}).Return([]schema.HelpRequest{accepted, completed}, int64(2), nil).Times(1)

	router := gin.New()
	router.Use(s.recognizeHelperMiddleware())
	router.GET("/:helperID/requests", s.helperRequests)

	req := httptest.NewRequest("GET", "/"+helperID.String()+"/requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ActiveRequests []schema.HelpRequest `json:"active_requests"`
		CompletedCount int                  `json:"completed_count"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.ActiveRequests, 1)
	assert.Equal(t, accepted.ID, resp.ActiveRequests[0].ID)
	assert.Equal(t, "2h ago", resp.ActiveRequests[0].TimeAgo)
	assert.Equal(t, 4, resp.CompletedCount)
}

func TestHelperRecommendations(t *testing.T) {
	s, a, m, ctl := testServer(t)
	defer ctl.Finish()

	helperID := uuid.New()
	helper := &schema.Helper{
		ID:          helperID,
		Phone:       "9841000000",
		CanHelpWith: "rescue",
	}

	a.EXPECT().GetHelper(helperID).Return(helper, nil).Times(1)
	a.EXPECT().TouchHelper(helperID).Return(nil).Times(1)
	m.EXPECT().GetHelperLocation(helperID).Return(&schema.Location{
		Latitude:  27.70,
		Longitude: 85.32,
	}, nil).Times(1)

	now := time.Now().UTC()
	near := schema.HelpRequest{
		ID:        uuid.New(),
		HelpType:  schema.HelpRescue,
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusRequested,
		Latitude:  27.70,
		Longitude: 85.32,
		CreatedAt: now,
	}
	far := schema.HelpRequest{
		ID:        uuid.New(),
		HelpType:  schema.HelpFood,
		Urgency:   schema.UrgencyLow,
		Status:    schema.StatusRequested,
		Latitude:  27.90,
		Longitude: 85.32,
		CreatedAt: now,
	}
	a.EXPECT().ListOpenRequests(time.Duration(0)).Return([]schema.HelpRequest{far, near}, nil).Times(1)

	router := gin.New()
	router.Use(s.recognizeHelperMiddleware())
	router.GET("/:helperID/recommendations", s.helperRecommendations)

	req := httptest.NewRequest("GET", "/"+helperID.String()+"/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []struct {
			Request struct {
				ID uuid.UUID `json:"id"`
			} `json:"request"`
			MatchScore float64 `json:"match_score"`
		} `json:"recommendations"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recommendations, 2)
	assert.Equal(t, near.ID, resp.Recommendations[0].Request.ID)
	assert.Greater(t, resp.Recommendations[0].MatchScore, resp.Recommendations[1].MatchScore)
}

func TestHelperRecommendationsNoLocation(t *testing.T) {
	s, a, m, ctl := testServer(t)
	defer ctl.Finish()

	helperID := uuid.New()
	a.EXPECT().GetHelper(helperID).Return(&schema.Helper{ID: helperID}, nil).Times(1)
	a.EXPECT().TouchHelper(helperID).Return(nil).Times(1)
	m.EXPECT().GetHelperLocation(helperID).Return(nil, nil).Times(1)

	router := gin.New()
	router.Use(s.recognizeHelperMiddleware())
	router.GET("/:helperID/recommendations", s.helperRecommendations)

	req := httptest.NewRequest("GET", "/"+helperID.String()+"/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1102), resp.Code)
}

func TestHelperUpdateLocation(t *testing.T) {
	s, a, m, ctl := testServer(t)
	defer ctl.Finish()

	helperID := uuid.New()
	a.EXPECT().GetHelper(helperID).Return(&schema.Helper{
		ID:    helperID,
		Phone: "9841000000",
	}, nil).Times(1)
	a.EXPECT().TouchHelper(helperID).Return(nil).Times(1)
	m.EXPECT().UpdateHelperLocation(helperID, "9841000000", schema.Location{
		Latitude:  27.70,
		Longitude: 85.32,
	}).Return(nil).Times(1)

	router := gin.New()
	router.Use(s.recognizeHelperMiddleware())
	router.PATCH("/:helperID/location", s.helperUpdateLocation)

	body, _ := json.Marshal(map[string]interface{}{
		"latitude":  27.70,
		"longitude": 85.32,
	})
	req := httptest.NewRequest("PATCH", "/"+helperID.String()+"/location", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
