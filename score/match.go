package score

import (
	"fmt"
	"sort"

	"github.com/codeXAI06/ReliefLink/consts"
	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
)

// MatchConfig weighs the ranking terms of smart recommendations.
// Weights sum to 1; the score is scaled to 0-100.
type MatchConfig struct {
	MaxDistanceKM  float64
	DistanceWeight float64
	SkillWeight    float64
	PriorityWeight float64
	TopN           int
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MaxDistanceKM:  consts.MATCH_DISTANCE_RANGE_KM,
		DistanceWeight: 0.4,
		SkillWeight:    0.3,
		PriorityWeight: 0.3,
		TopN:           5,
	}
}

// HelperContext is a helper plus the current location from the geo
// profile.
type HelperContext struct {
	Helper   schema.Helper
	Location schema.Location
}

// Match is one recommended request for a helper.
type Match struct {
	Request       schema.HelpRequest `json:"request"`
	MatchScore    float64            `json:"match_score"`
	MatchReasons  []string           `json:"match_reasons"`
	DistanceKM    float64            `json:"distance_km"`
	PriorityScore int                `json:"priority_score"`
	PriorityLabel string             `json:"priority_label"`
}

// Rank orders open requests for a helper by distance, skill overlap and
// the request's own priority. Requests beyond MaxDistanceKM, already
// terminal, or already assigned to a helper are excluded. Ties resolve
// by higher priority score, then earlier creation. The result is capped
// at TopN.
func Rank(helper HelperContext, open []schema.HelpRequest, cfg MatchConfig) []Match {
	skills := map[string]bool{}
	for _, tag := range helper.Helper.SkillTags() {
		skills[tag] = true
	}

	matches := make([]Match, 0, len(open))
	for _, r := range open {
		if r.Status.Terminal() || r.HelperID != nil {
			continue
		}

		distance := geo.Distance(helper.Location, schema.Location{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
		if distance > cfg.MaxDistanceKM {
			continue
		}

		reasons := make([]string, 0, 3)

		distanceScore := 1 - distance/cfg.MaxDistanceKM
		reasons = append(reasons, fmt.Sprintf("%.1fkm away", distance))

		skillScore := 0.0
		if skills[string(r.EffectiveType())] {
			skillScore = 1.0
			reasons = append(reasons, fmt.Sprintf("matches %s skills", r.EffectiveType()))
		}

		priorityScore := float64(r.PriorityScore) / 100
		if r.PriorityLabel == LabelCritical || r.PriorityLabel == LabelHigh {
			reasons = append(reasons, fmt.Sprintf("%s priority", r.PriorityLabel))
		}

		total := 100 * (cfg.DistanceWeight*distanceScore +
			cfg.SkillWeight*skillScore +
			cfg.PriorityWeight*priorityScore)

		matches = append(matches, Match{
			Request:       r,
			MatchScore:    total,
			MatchReasons:  reasons,
			DistanceKM:    distance,
			PriorityScore: r.PriorityScore,
			PriorityLabel: r.PriorityLabel,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		if matches[i].PriorityScore != matches[j].PriorityScore {
			return matches[i].PriorityScore > matches[j].PriorityScore
		}
		return matches[i].Request.CreatedAt.Before(matches[j].Request.CreatedAt)
	})

	if cfg.TopN > 0 && len(matches) > cfg.TopN {
		matches = matches[:cfg.TopN]
	}
	return matches
}
