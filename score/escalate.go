package score

import (
	"time"

	"github.com/codeXAI06/ReliefLink/schema"
)

// EscalationPolicy decides when an unanswered request earns another
// severity bump. Thresholds shrink as declared urgency rises. MaxLevel
// caps the level operationally so the escalation bonus cannot inflate a
// score without bound; 5 levels (+50 points) already pins any request
// at the top of the feed.
type EscalationPolicy struct {
	Thresholds map[schema.Urgency]time.Duration
	MaxLevel   int
}

func DefaultEscalationPolicy() EscalationPolicy {
	return EscalationPolicy{
		Thresholds: map[schema.Urgency]time.Duration{
			schema.UrgencyCritical: 10 * time.Minute,
			schema.UrgencyModerate: 30 * time.Minute,
			schema.UrgencyLow:      60 * time.Minute,
		},
		MaxLevel: 5,
	}
}

// ShouldEscalate reports whether the sweep should bump the request now.
// Only not-yet-accepted requests are eligible; the age is measured from
// the later of creation and the previous escalation, which also makes
// re-running a sweep on an unmodified request a no-op until the next
// threshold elapses.
func (p EscalationPolicy) ShouldEscalate(r schema.HelpRequest, now time.Time) bool {
	if r.Status != schema.StatusRequested {
		return false
	}
	if r.EscalationLevel >= p.MaxLevel {
		return false
	}

	threshold, ok := p.Thresholds[r.Urgency]
	if !ok {
		threshold = p.Thresholds[schema.UrgencyModerate]
	}

	since := r.CreatedAt
	if r.LastEscalatedAt != nil && r.LastEscalatedAt.After(since) {
		since = *r.LastEscalatedAt
	}

	return now.Sub(since) > threshold
}
