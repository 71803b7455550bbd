package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/schema"
)

func pendingRequest(urgency schema.Urgency, age time.Duration) schema.HelpRequest {
	return schema.HelpRequest{
		Urgency:   urgency,
		Status:    schema.StatusRequested,
		CreatedAt: scoreNow.Add(-age),
	}
}

func TestShouldEscalateThresholds(t *testing.T) {
	policy := DefaultEscalationPolicy()

	assert.False(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyCritical, 5*time.Minute), scoreNow))
	assert.True(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyCritical, 11*time.Minute), scoreNow))

	assert.False(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyModerate, 20*time.Minute), scoreNow))
	assert.True(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyModerate, 31*time.Minute), scoreNow))

	assert.False(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyLow, 45*time.Minute), scoreNow))
	assert.True(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyLow, 61*time.Minute), scoreNow))
}

func TestShouldEscalateExactThresholdNotYet(t *testing.T) {
	policy := DefaultEscalationPolicy()
	assert.False(t, policy.ShouldEscalate(pendingRequest(schema.UrgencyCritical, 10*time.Minute), scoreNow))
}

func TestShouldEscalateOnlyPending(t *testing.T) {
	policy := DefaultEscalationPolicy()

	for _, status := range []schema.RequestStatus{
		schema.StatusAccepted,
		schema.StatusInProgress,
		schema.StatusCompleted,
		schema.StatusCancelled,
	} {
		r := pendingRequest(schema.UrgencyCritical, 2*time.Hour)
		r.Status = status
		assert.False(t, policy.ShouldEscalate(r, scoreNow), string(status))
	}
}

func TestShouldEscalateLevelCap(t *testing.T) {
	policy := DefaultEscalationPolicy()

	r := pendingRequest(schema.UrgencyCritical, 24*time.Hour)
	r.EscalationLevel = policy.MaxLevel
	assert.False(t, policy.ShouldEscalate(r, scoreNow))

	r.EscalationLevel = policy.MaxLevel - 1
	assert.True(t, policy.ShouldEscalate(r, scoreNow))
}

func TestShouldEscalateMeasuresFromLastEscalation(t *testing.T) {
	policy := DefaultEscalationPolicy()

	r := pendingRequest(schema.UrgencyCritical, time.Hour)
	r.EscalationLevel = 1

	recent := scoreNow.Add(-5 * time.Minute)
	r.LastEscalatedAt = &recent
	assert.False(t, policy.ShouldEscalate(r, scoreNow))

	stale := scoreNow.Add(-15 * time.Minute)
	r.LastEscalatedAt = &stale
	assert.True(t, policy.ShouldEscalate(r, scoreNow))
}

func TestShouldEscalateSweepIdempotent(t *testing.T) {
	policy := DefaultEscalationPolicy()

	r := pendingRequest(schema.UrgencyCritical, 25*time.Minute)
	assert.True(t, policy.ShouldEscalate(r, scoreNow))

	// the sweep records the bump; an immediate re-run must be a no-op
	r.EscalationLevel = 1
	bumped := scoreNow
	r.LastEscalatedAt = &bumped
	assert.False(t, policy.ShouldEscalate(r, scoreNow))

	later := scoreNow.Add(11 * time.Minute)
	assert.True(t, policy.ShouldEscalate(r, later))
}

func TestShouldEscalateUnknownUrgencyFallsBack(t *testing.T) {
	policy := DefaultEscalationPolicy()

	r := pendingRequest(schema.Urgency("unknown"), 31*time.Minute)
	assert.True(t, policy.ShouldEscalate(r, scoreNow))
	assert.False(t, policy.ShouldEscalate(pendingRequest(schema.Urgency("unknown"), 20*time.Minute), scoreNow))
}
