package score

import (
	"regexp"
	"strings"
)

// Spam/fake signals. Flagging only marks a request for human review; it
// never blocks creation, since a terse or odd message can still be a
// genuine emergency.
var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(click here|visit now|free money|lottery|winner)`),
	regexp.MustCompile(`(?i)\b(test|testing|ignore)\b`),
}

const (
	minDescriptionLength = 5

	phoneRateLimit    = 5
	locationRateLimit = 10

	flagThreshold = 0.5
)

// FlagResult is the outcome of spam/fake screening.
type FlagResult struct {
	Flagged    bool    `json:"flagged"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// CheckFlag screens a request for spam indicators. recentFromPhone and
// recentFromLocation are 24h counts supplied by the store.
func CheckFlag(description string, recentFromPhone, recentFromLocation int) FlagResult {
	text := strings.TrimSpace(description)

	reasons := make([]string, 0, 4)
	confidence := 0.0

	if recentFromPhone >= phoneRateLimit {
		reasons = append(reasons, "many recent requests from same phone")
		confidence += 0.3
	}
	if recentFromLocation >= locationRateLimit {
		reasons = append(reasons, "many recent requests from same location")
		confidence += 0.2
	}

	suspicious := hasRepeatedRun(text, 6)
	for _, pattern := range spamPatterns {
		if suspicious {
			break
		}
		suspicious = pattern.MatchString(text)
	}
	if suspicious {
		reasons = append(reasons, "suspicious text pattern")
		confidence += 0.3
	}

	if text != "" && len(text) < minDescriptionLength {
		reasons = append(reasons, "description too short")
		confidence += 0.1
	}

	return FlagResult{
		Flagged:    confidence >= flagThreshold,
		Reason:     strings.Join(reasons, "; "),
		Confidence: confidence,
	}
}

// hasRepeatedRun reports whether any rune repeats n or more times in a
// row. Keyboard-mash submissions look like this.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
