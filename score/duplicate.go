package score

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeXAI06/ReliefLink/consts"
	"github.com/codeXAI06/ReliefLink/geo"
	"github.com/codeXAI06/ReliefLink/schema"
)

// DuplicateConfig bounds the candidate set and weighs the similarity
// terms. Text carries most of the weight; distance only breaks near-by
// ambiguity.
type DuplicateConfig struct {
	RadiusKM       float64
	Window         time.Duration
	Threshold      float64
	TextWeight     float64
	DistanceWeight float64
}

func DefaultDuplicateConfig() DuplicateConfig {
	return DuplicateConfig{
		RadiusKM:       consts.DUPLICATE_RADIUS_KM,
		Window:         consts.DUPLICATE_WINDOW_HOURS * time.Hour,
		Threshold:      0.6,
		TextWeight:     0.7,
		DistanceWeight: 0.3,
	}
}

// DuplicateMatch names the most similar prior request.
type DuplicateMatch struct {
	RequestID  uuid.UUID `json:"request_id"`
	Similarity float64   `json:"similarity"`
	Reasons    []string  `json:"reasons"`
}

// FindDuplicate compares a new request against currently open requests
// and returns the best candidate over the threshold, or nil. Candidates
// outside the spatial radius or time window never count, so far-away or
// stale requests cannot be flagged. Ties over the threshold resolve to
// the highest similarity, then to the earliest creation time (the
// original). An empty candidate set is a normal no-duplicate answer.
func FindDuplicate(request schema.HelpRequest, open []schema.HelpRequest, cfg DuplicateConfig) *DuplicateMatch {
	location := schema.Location{Latitude: request.Latitude, Longitude: request.Longitude}
	words := tokenSet(normalize(request.Description))

	var best *DuplicateMatch
	var bestCreatedAt time.Time

	for _, candidate := range open {
		if candidate.ID == request.ID {
			continue
		}
		if candidate.Status.Terminal() {
			continue
		}

		age := request.CreatedAt.Sub(candidate.CreatedAt)
		if age < 0 || age > cfg.Window {
			continue
		}

		distance := geo.Distance(location, schema.Location{
			Latitude:  candidate.Latitude,
			Longitude: candidate.Longitude,
		})
		if distance > cfg.RadiusKM {
			continue
		}

		textSim := jaccard(words, tokenSet(normalize(candidate.Description)))
		distanceSim := 1 - distance/cfg.RadiusKM
		if distanceSim < 0 {
			distanceSim = 0
		}
		similarity := cfg.TextWeight*textSim + cfg.DistanceWeight*distanceSim

		if similarity < cfg.Threshold {
			continue
		}

		if best == nil || similarity > best.Similarity ||
			(similarity == best.Similarity && candidate.CreatedAt.Before(bestCreatedAt)) {
			best = &DuplicateMatch{
				RequestID:  candidate.ID,
				Similarity: similarity,
				Reasons: []string{
					fmt.Sprintf("text %.0f%% similar", textSim*100),
					fmt.Sprintf("%.2fkm away", distance),
				},
			}
			bestCreatedAt = candidate.CreatedAt
		}
	}

	return best
}

// jaccard is the token-overlap ratio of two normalized word sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
