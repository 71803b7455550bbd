package background

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codeXAI06/ReliefLink/api/mocks"
	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/store"
)

func TestEscalationSweepBumpsOverdueRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockReliefCore(ctl)
	m := &BackgroundManager{store: a}

	now := time.Now().UTC()

	overdue := schema.HelpRequest{
		ID:        uuid.New(),
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusRequested,
		CreatedAt: now.Add(-25 * time.Minute),
	}
	fresh := schema.HelpRequest{
		ID:        uuid.New(),
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusRequested,
		CreatedAt: now.Add(-5 * time.Minute),
	}
	accepted := schema.HelpRequest{
		ID:        uuid.New(),
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusAccepted,
		CreatedAt: now.Add(-2 * time.Hour),
	}

	a.EXPECT().ListOpenRequests(time.Duration(0)).
		Return([]schema.HelpRequest{overdue, fresh, accepted}, nil).Times(1)

	bumped := overdue
	bumped.EscalationLevel = 1
	bumped.LastEscalatedAt = &now

	a.EXPECT().EscalateRequest(overdue.ID, 0, gomock.Any()).Return(&bumped, nil).Times(1)
	a.EXPECT().ApplyScore(overdue.ID, gomock.Any()).DoAndReturn(func(id uuid.UUID, update store.ScoreUpdate) error {
		assert.Contains(t, update.PriorityReason, "escalation (+10)")
		return nil
	}).Times(1)
	a.EXPECT().AppendAILog(gomock.Any()).Return(nil).Times(1)

	m.EscalationSweep()
}

func TestEscalationSweepToleratesLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockReliefCore(ctl)
	m := &BackgroundManager{store: a}

	now := time.Now().UTC()

	first := schema.HelpRequest{
		ID:        uuid.New(),
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusRequested,
		CreatedAt: now.Add(-30 * time.Minute),
	}
	second := schema.HelpRequest{
		ID:        uuid.New(),
		Urgency:   schema.UrgencyCritical,
		Status:    schema.StatusRequested,
		CreatedAt: now.Add(-30 * time.Minute),
	}

	a.EXPECT().ListOpenRequests(time.Duration(0)).
		Return([]schema.HelpRequest{first, second}, nil).Times(1)

	// first row was taken by a concurrent writer; the sweep moves on
	a.EXPECT().EscalateRequest(first.ID, 0, gomock.Any()).
		Return(nil, store.ErrRequestStateChanged).Times(1)

	bumped := second
	bumped.EscalationLevel = 1
	a.EXPECT().EscalateRequest(second.ID, 0, gomock.Any()).Return(&bumped, nil).Times(1)
	a.EXPECT().ApplyScore(second.ID, gomock.Any()).Return(nil).Times(1)
	a.EXPECT().AppendAILog(gomock.Any()).Return(nil).Times(1)

	m.EscalationSweep()
}
