package score

import (
	"math"
	"strings"
	"unicode"

	"github.com/codeXAI06/ReliefLink/schema"
)

// Signals is everything the text signal extractor reads out of a
// request description. The zero value is the documented neutral output
// for empty or unrecognized text.
type Signals struct {
	DetectedType       schema.HelpType    `json:"detected_type"`
	Confidence         float64            `json:"confidence"`
	DistressScore      float64            `json:"distress_score"`
	DistressIndicators map[string]float64 `json:"distress_indicators"`
	VulnerableGroups   []string           `json:"vulnerable_groups"`
	ExtractedSupplies  []string           `json:"extracted_supplies"`
	DetectedLanguage   string             `json:"detected_language"`
}

// ExtractConfig holds the calibration knobs of the extractor. The
// increment and dampener are heuristic constants, not correctness
// requirements; keep them configurable.
type ExtractConfig struct {
	// DistressIncrement is the per-match step of an indicator sub-score.
	DistressIncrement float64
	// DistressDampener scales the saturating sum of sub-scores so one
	// indicator alone cannot trivially saturate the aggregate.
	DistressDampener float64
}

func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		DistressIncrement: 0.3,
		DistressDampener:  0.5,
	}
}

// Extract scans free text against the lexicons. It never fails: empty,
// whitespace-only, or unrecognized-script text yields neutral Signals.
// Pure function over its inputs.
func Extract(text string, cfg ExtractConfig) Signals {
	signals := Signals{
		DistressIndicators: map[string]float64{},
		VulnerableGroups:   []string{},
		ExtractedSupplies:  []string{},
		DetectedLanguage:   DetectLanguage(text),
	}

	normalized := normalize(text)
	if normalized == "" {
		return signals
	}
	tokens := tokenSet(normalized)

	// category detection: confidence is the matched weight of the
	// winning category relative to matched weight across all categories
	var totalWeight float64
	categoryWeight := map[schema.HelpType]float64{}
	for _, category := range schema.HelpTypes {
		for _, kw := range CategoryKeywords[category] {
			if matches(normalized, tokens, kw.Word) {
				categoryWeight[category] += kw.Weight
				totalWeight += kw.Weight
			}
		}
	}
	if totalWeight > 0 {
		best := schema.HelpType("")
		var bestWeight float64
		for _, category := range schema.HelpTypes {
			if w := categoryWeight[category]; w > bestWeight {
				best = category
				bestWeight = w
			}
		}
		signals.DetectedType = best
		signals.Confidence = math.Min(1.0, bestWeight/totalWeight)
	}

	// distress: per-indicator saturating counts, then a dampened sum
	var subTotal float64
	for _, indicator := range []string{IndicatorPanic, IndicatorCrying, IndicatorDesperation, IndicatorPhysicalDistress} {
		count := 0
		for _, word := range DistressKeywords[indicator] {
			if matches(normalized, tokens, word) {
				count++
			}
		}
		if count > 0 {
			sub := math.Min(1.0, float64(count)*cfg.DistressIncrement)
			signals.DistressIndicators[indicator] = sub
			subTotal += sub
		}
	}
	signals.DistressScore = math.Min(1.0, subTotal*cfg.DistressDampener)

	for _, group := range VulnerableGroupOrder {
		for _, word := range VulnerableKeywords[group] {
			if matches(normalized, tokens, word) {
				signals.VulnerableGroups = append(signals.VulnerableGroups, group)
				break
			}
		}
	}

	for _, supply := range SupplyKeywords {
		if matches(normalized, tokens, supply) {
			signals.ExtractedSupplies = append(signals.ExtractedSupplies, supply)
		}
	}

	return signals
}

// DetectLanguage sniffs the dominant script of the text. It recognizes
// the scripts the lexicons cover; everything else reports "en", which
// for unsupported scripts means neutral downstream output rather than
// an error.
func DetectLanguage(text string) string {
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			return "hi"
		case r >= 0x0B80 && r <= 0x0BFF:
			return "ta"
		case r >= 0x0C00 && r <= 0x0C7F:
			return "te"
		case r >= 0x0980 && r <= 0x09FF:
			return "bn"
		}
	}
	return "en"
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// tokenSet splits normalized text into words. Apostrophes stay inside
// tokens so entries like "can't move" keep matching.
func tokenSet(normalized string) map[string]bool {
	tokens := map[string]bool{}
	for _, tok := range splitWords(normalized) {
		tokens[tok] = true
	}
	return tokens
}

func splitWords(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// matches checks a lexicon entry against the text: single words must
// match a whole token, phrases match by substring.
func matches(normalized string, tokens map[string]bool, word string) bool {
	if strings.ContainsRune(word, ' ') {
		return strings.Contains(normalized, word)
	}
	return tokens[word]
}
