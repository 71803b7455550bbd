package score

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/schema"
)

func rescueHelper(lat, lon float64) HelperContext {
	return HelperContext{
		Helper: schema.Helper{
			ID:          uuid.New(),
			CanHelpWith: "rescue, medical",
		},
		Location: schema.Location{Latitude: lat, Longitude: lon},
	}
}

func matchableRequest(helpType schema.HelpType, priority int, lat, lon float64) schema.HelpRequest {
	return schema.HelpRequest{
		ID:            uuid.New(),
		HelpType:      helpType,
		Latitude:      lat,
		Longitude:     lon,
		Status:        schema.StatusRequested,
		PriorityScore: priority,
		PriorityLabel: labelFor(priority),
		CreatedAt:     scoreNow.Add(-time.Hour),
	}
}

func TestRankScoresColocatedSkillMatch(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)
	request := matchableRequest(schema.HelpRescue, 80, 27.70, 85.32)

	matches := Rank(helper, []schema.HelpRequest{request}, DefaultMatchConfig())

	assert.Len(t, matches, 1)
	// 40*1.0 + 30*1.0 + 30*0.8
	assert.InDelta(t, 94.0, matches[0].MatchScore, 1e-9)
	assert.Contains(t, matches[0].MatchReasons, "matches rescue skills")
	assert.Contains(t, matches[0].MatchReasons, "critical priority")
}

func TestRankPrefersNearbyRequests(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)
	near := matchableRequest(schema.HelpFood, 50, 27.71, 85.32)
	far := matchableRequest(schema.HelpFood, 50, 27.90, 85.32)

	matches := Rank(helper, []schema.HelpRequest{far, near}, DefaultMatchConfig())

	assert.Len(t, matches, 2)
	assert.Equal(t, near.ID, matches[0].Request.ID)
	assert.Equal(t, far.ID, matches[1].Request.ID)
	assert.Less(t, matches[0].DistanceKM, matches[1].DistanceKM)
}

func TestRankSkillOverlapOutranksDistance(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)
	nearNoSkill := matchableRequest(schema.HelpFood, 50, 27.71, 85.32)
	fartherSkill := matchableRequest(schema.HelpMedical, 50, 27.75, 85.32)

	matches := Rank(helper, []schema.HelpRequest{nearNoSkill, fartherSkill}, DefaultMatchConfig())

	assert.Len(t, matches, 2)
	assert.Equal(t, fartherSkill.ID, matches[0].Request.ID)
}

func TestRankExcludesBeyondMaxDistance(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)
	// ~55km north
	outOfRange := matchableRequest(schema.HelpRescue, 90, 28.20, 85.32)

	matches := Rank(helper, []schema.HelpRequest{outOfRange}, DefaultMatchConfig())
	assert.Empty(t, matches)
}

func TestRankExcludesTerminalAndAssigned(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)

	completed := matchableRequest(schema.HelpRescue, 90, 27.70, 85.32)
	completed.Status = schema.StatusCompleted

	assigned := matchableRequest(schema.HelpRescue, 90, 27.70, 85.32)
	other := uuid.New()
	assigned.HelperID = &other

	open := matchableRequest(schema.HelpRescue, 90, 27.70, 85.32)

	matches := Rank(helper, []schema.HelpRequest{completed, assigned, open}, DefaultMatchConfig())

	assert.Len(t, matches, 1)
	assert.Equal(t, open.ID, matches[0].Request.ID)
}

func TestRankTieBreaksByPriorityThenAge(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)

	lowPriority := matchableRequest(schema.HelpFood, 30, 27.70, 85.32)
	highPriority := matchableRequest(schema.HelpFood, 60, 27.70, 85.32)

	matches := Rank(helper, []schema.HelpRequest{lowPriority, highPriority}, DefaultMatchConfig())
	assert.Equal(t, highPriority.ID, matches[0].Request.ID)

	older := matchableRequest(schema.HelpFood, 30, 27.70, 85.32)
	older.CreatedAt = scoreNow.Add(-5 * time.Hour)

	matches = Rank(helper, []schema.HelpRequest{lowPriority, older}, DefaultMatchConfig())
	assert.Equal(t, older.ID, matches[0].Request.ID)
}

func TestRankCapsAtTopN(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)

	open := make([]schema.HelpRequest, 0, 8)
	for i := 0; i < 8; i++ {
		open = append(open, matchableRequest(schema.HelpFood, 40+i, 27.70, 85.32))
	}

	matches := Rank(helper, open, DefaultMatchConfig())

	assert.Len(t, matches, 5)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
}

func TestRankUsesDetectedTypeFallback(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)

	request := matchableRequest(schema.HelpOther, 50, 27.70, 85.32)
	request.DetectedType = schema.HelpRescue

	matches := Rank(helper, []schema.HelpRequest{request}, DefaultMatchConfig())

	assert.Len(t, matches, 1)
	assert.Contains(t, matches[0].MatchReasons, "matches rescue skills")
}

func TestRankEmptyFeed(t *testing.T) {
	helper := rescueHelper(27.70, 85.32)
	assert.Empty(t, Rank(helper, nil, DefaultMatchConfig()))
}
