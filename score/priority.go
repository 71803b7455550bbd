package score

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/codeXAI06/ReliefLink/schema"
)

// Base scores and bonuses of the priority formula. The additive design
// is deliberate: every term stays a named contribution so the explain
// endpoint can reproduce the exact breakdown instead of reverse
// engineering a single opaque number.
const (
	BaseCritical = 60
	BaseModerate = 35
	BaseLow      = 15

	LifeSafetyBonus = 15

	MaxDistressBoost     = 15
	VulnerableGroupBoost = 5
	MaxVulnerableBoost   = 15

	AgingBoostPerHour = 2
	MaxAgingBoost     = 20

	EscalationBoost = 10
)

// Label thresholds.
const (
	LabelCritical = "critical"
	LabelHigh     = "high"
	LabelMedium   = "medium"
	LabelLow      = "low"
)

// Input are the persisted fields the priority score is a pure function
// of. Nothing else may influence the score.
type Input struct {
	Urgency          schema.Urgency
	HelpType         schema.HelpType
	DistressScore    float64
	VulnerableGroups int
	EscalationLevel  int
	CreatedAt        time.Time
}

// Contribution is one named additive term of the score.
type Contribution struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Result is a computed priority. Contributions appear in the fixed
// formula order with zero-valued terms omitted; Reason is their
// rendering joined by ", ".
type Result struct {
	Score         int            `json:"score"`
	Label         string         `json:"label"`
	Contributions []Contribution `json:"contributions"`
	Reason        string         `json:"reason"`
}

// InputFromRequest collects the scorer inputs out of a persisted
// request.
func InputFromRequest(r schema.HelpRequest) Input {
	return Input{
		Urgency:          r.Urgency,
		HelpType:         r.EffectiveType(),
		DistressScore:    r.DistressScore,
		VulnerableGroups: len(r.VulnerableGroups),
		EscalationLevel:  r.EscalationLevel,
		CreatedAt:        r.CreatedAt,
	}
}

// Compute evaluates the priority formula. Deterministic: identical
// inputs produce an identical score and reason string.
//
// Term order is a contract — base urgency, life-safety bonus, distress,
// vulnerable groups, time pending, escalation — because the reason
// trail and the explain endpoint surface it to users in this sequence.
func Compute(in Input, now time.Time) Result {
	contributions := make([]Contribution, 0, 6)
	add := func(name string, value int) {
		if value != 0 {
			contributions = append(contributions, Contribution{Name: name, Value: value})
		}
	}

	base := BaseModerate
	switch in.Urgency {
	case schema.UrgencyCritical:
		base = BaseCritical
	case schema.UrgencyModerate:
		base = BaseModerate
	case schema.UrgencyLow:
		base = BaseLow
	}
	add(fmt.Sprintf("%s urgency", in.Urgency), base)

	if in.HelpType == schema.HelpRescue || in.HelpType == schema.HelpMedical {
		add(fmt.Sprintf("%s bonus", in.HelpType), LifeSafetyBonus)
	}

	add("high distress", int(math.Round(in.DistressScore*MaxDistressBoost)))

	vulnerable := in.VulnerableGroups * VulnerableGroupBoost
	if vulnerable > MaxVulnerableBoost {
		vulnerable = MaxVulnerableBoost
	}
	add("vulnerable groups", vulnerable)

	aging := 0
	if now.After(in.CreatedAt) {
		hours := int(now.Sub(in.CreatedAt).Hours())
		aging = hours * AgingBoostPerHour
		if aging > MaxAgingBoost {
			aging = MaxAgingBoost
		}
	}
	add("time pending", aging)

	add("escalation", in.EscalationLevel*EscalationBoost)

	total := 0
	for _, c := range contributions {
		total += c.Value
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return Result{
		Score:         total,
		Label:         labelFor(total),
		Contributions: contributions,
		Reason:        reasonText(contributions),
	}
}

func labelFor(total int) string {
	switch {
	case total >= 75:
		return LabelCritical
	case total >= 50:
		return LabelHigh
	case total >= 25:
		return LabelMedium
	default:
		return LabelLow
	}
}

func reasonText(contributions []Contribution) string {
	parts := make([]string, len(contributions))
	for i, c := range contributions {
		parts[i] = fmt.Sprintf("%s (+%d)", c.Name, c.Value)
	}
	return strings.Join(parts, ", ")
}

// Breakdown is the explain-endpoint view of a Result: the base term
// split from the bonuses, in the same order Compute produced them.
type Breakdown struct {
	Base       Contribution   `json:"base"`
	Bonuses    []Contribution `json:"bonuses"`
	FinalScore int            `json:"final_score"`
	Label      string         `json:"label"`
	ReasonText string         `json:"reason_text"`
}

// Explain recomputes the score and returns the ordered breakdown. It
// must agree with Compute exactly; it is the same computation.
func Explain(in Input, now time.Time) Breakdown {
	result := Compute(in, now)
	return Breakdown{
		Base:       result.Contributions[0],
		Bonuses:    result.Contributions[1:],
		FinalScore: result.Score,
		Label:      result.Label,
		ReasonText: result.Reason,
	}
}
