package background

import (
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/viper"

	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/score"
	"github.com/codeXAI06/ReliefLink/store"
)

// sweepRunning guards against overlapping sweeps. A tick that arrives
// while the previous sweep is still walking the table is skipped, not
// queued.
var sweepRunning int32

func escalationPolicy() score.EscalationPolicy {
	policy := score.DefaultEscalationPolicy()
	if v := viper.GetDuration("escalation.critical_after"); v > 0 {
		policy.Thresholds[schema.UrgencyCritical] = v
	}
	if v := viper.GetDuration("escalation.moderate_after"); v > 0 {
		policy.Thresholds[schema.UrgencyModerate] = v
	}
	if v := viper.GetDuration("escalation.low_after"); v > 0 {
		policy.Thresholds[schema.UrgencyLow] = v
	}
	if v := viper.GetInt("escalation.max_level"); v > 0 {
		policy.MaxLevel = v
	}
	return policy
}

// RunEscalationSweeps ticks the sweep until stop is closed.
func (m *BackgroundManager) RunEscalationSweeps(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.EscalationSweep()
		}
	}
}

// EscalationSweep walks pending requests and bumps the ones that sat
// unattended past their urgency threshold. One request failing does not
// stop the rest of the sweep.
func (m *BackgroundManager) EscalationSweep() {
	if !atomic.CompareAndSwapInt32(&sweepRunning, 0, 1) {
		log.Warn("escalation sweep still running, skipping this tick")
		return
	}
	defer atomic.StoreInt32(&sweepRunning, 0)

	started := time.Now()
	now := started.UTC()
	policy := escalationPolicy()

	pending, err := m.store.ListOpenRequests(0)
	if err != nil {
		log.WithError(err).Error("list open requests for escalation sweep")
		sentry.CaptureException(err)
		return
	}

	escalated := 0
	for _, request := range pending {
		if !policy.ShouldEscalate(request, now) {
			continue
		}

		if err := m.escalateOne(request, now); err != nil {
			// a concurrent status change or another sweep won the row
			if err == store.ErrRequestStateChanged {
				continue
			}
			log.WithError(err).Errorf("escalate request %s", request.ID)
			sentry.CaptureException(err)
			continue
		}
		escalated++
	}

	log.Infof("escalation sweep checked %d requests, escalated %d in %s",
		len(pending), escalated, time.Since(started))
}

func (m *BackgroundManager) escalateOne(request schema.HelpRequest, now time.Time) error {
	updated, err := m.store.EscalateRequest(request.ID, request.EscalationLevel, now)
	if err != nil {
		return err
	}

	result := score.Compute(score.InputFromRequest(*updated), now)
	if err := m.store.ApplyScore(updated.ID, store.ScoreUpdate{
		PriorityScore:  result.Score,
		PriorityLabel:  result.Label,
		PriorityReason: result.Reason,
	}); err != nil {
		return err
	}

	if err := m.store.AppendAILog(&schema.AILog{
		RequestID: updated.ID,
		Action:    "escalate",
		Output: schema.AnalysisOutput{
			"escalation_level": updated.EscalationLevel,
			"priority_score":   result.Score,
			"priority_label":   result.Label,
		},
		Confidence:  1,
		Explanation: result.Reason,
	}); err != nil {
		log.WithError(err).Error("append escalation ai log")
	}

	log.Infof("escalated request %s to level %d, score %d",
		updated.ID, updated.EscalationLevel, result.Score)
	return nil
}
