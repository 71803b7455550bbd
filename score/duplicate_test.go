package score

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/schema"
)

func openRequest(description string, lat, lon float64, age time.Duration) schema.HelpRequest {
	return schema.HelpRequest{
		ID:          uuid.New(),
		Description: description,
		Latitude:    lat,
		Longitude:   lon,
		Status:      schema.StatusRequested,
		CreatedAt:   scoreNow.Add(-age),
	}
}

func TestFindDuplicateIdenticalRequest(t *testing.T) {
	incoming := openRequest("family trapped on roof, need rescue boat", 27.70, 85.32, 0)
	prior := openRequest("family trapped on roof, need rescue boat", 27.70, 85.32, time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{prior}, DefaultDuplicateConfig())

	assert.NotNil(t, match)
	assert.Equal(t, prior.ID, match.RequestID)
	assert.InDelta(t, 1.0, match.Similarity, 1e-9)
}

func TestFindDuplicateSkipsSelf(t *testing.T) {
	incoming := openRequest("need food urgently", 27.70, 85.32, 0)

	match := FindDuplicate(incoming, []schema.HelpRequest{incoming}, DefaultDuplicateConfig())
	assert.Nil(t, match)
}

func TestFindDuplicateNearbyReworded(t *testing.T) {
	// ~200m apart, mostly overlapping words
	incoming := openRequest("need food for my family", 27.700, 85.320, 0)
	prior := openRequest("need food for family", 27.7018, 85.320, 2*time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{prior}, DefaultDuplicateConfig())

	assert.NotNil(t, match)
	assert.Equal(t, prior.ID, match.RequestID)
	assert.Greater(t, match.Similarity, 0.8)
	assert.Len(t, match.Reasons, 2)
}

func TestFindDuplicateOutsideRadius(t *testing.T) {
	incoming := openRequest("need food for my family", 27.70, 85.32, 0)
	far := openRequest("need food for my family", 27.73, 85.32, time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{far}, DefaultDuplicateConfig())
	assert.Nil(t, match)
}

func TestFindDuplicateOutsideWindow(t *testing.T) {
	incoming := openRequest("need food for my family", 27.70, 85.32, 0)
	stale := openRequest("need food for my family", 27.70, 85.32, 25*time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{stale}, DefaultDuplicateConfig())
	assert.Nil(t, match)
}

func TestFindDuplicateSkipsTerminal(t *testing.T) {
	incoming := openRequest("need food for my family", 27.70, 85.32, 0)

	completed := openRequest("need food for my family", 27.70, 85.32, time.Hour)
	completed.Status = schema.StatusCompleted
	cancelled := openRequest("need food for my family", 27.70, 85.32, time.Hour)
	cancelled.Status = schema.StatusCancelled

	match := FindDuplicate(incoming, []schema.HelpRequest{completed, cancelled}, DefaultDuplicateConfig())
	assert.Nil(t, match)
}

func TestFindDuplicateBelowThreshold(t *testing.T) {
	incoming := openRequest("medicine for diabetic patient", 27.70, 85.32, 0)
	other := openRequest("boat rescue near river bank", 27.70, 85.32, time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{other}, DefaultDuplicateConfig())
	assert.Nil(t, match)
}

func TestFindDuplicateTieGoesToEarliest(t *testing.T) {
	incoming := openRequest("need drinking water", 27.70, 85.32, 0)
	earlier := openRequest("need drinking water", 27.70, 85.32, 3*time.Hour)
	later := openRequest("need drinking water", 27.70, 85.32, time.Hour)

	match := FindDuplicate(incoming, []schema.HelpRequest{later, earlier}, DefaultDuplicateConfig())

	assert.NotNil(t, match)
	assert.Equal(t, earlier.ID, match.RequestID)
}

func TestFindDuplicateEmptyCandidates(t *testing.T) {
	incoming := openRequest("need drinking water", 27.70, 85.32, 0)
	assert.Nil(t, FindDuplicate(incoming, nil, DefaultDuplicateConfig()))
	assert.Nil(t, FindDuplicate(incoming, []schema.HelpRequest{}, DefaultDuplicateConfig()))
}

func TestJaccard(t *testing.T) {
	a := map[string]bool{"need": true, "food": true, "for": true, "my": true, "family": true}
	b := map[string]bool{"need": true, "food": true, "for": true, "family": true}

	assert.InDelta(t, 0.8, jaccard(a, b), 1e-9)
	assert.Equal(t, 1.0, jaccard(a, a))
	assert.Equal(t, 0.0, jaccard(a, map[string]bool{}))
	assert.Equal(t, 0.0, jaccard(map[string]bool{}, map[string]bool{}))
}
