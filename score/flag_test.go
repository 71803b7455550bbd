package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFlagGenuineRequest(t *testing.T) {
	result := CheckFlag("family trapped on the roof, water rising fast", 1, 2)

	assert.False(t, result.Flagged)
	assert.Empty(t, result.Reason)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestCheckFlagPromoText(t *testing.T) {
	result := CheckFlag("click here to win free money", 0, 0)

	assert.False(t, result.Flagged)
	assert.Contains(t, result.Reason, "suspicious text pattern")
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestCheckFlagPromoTextPlusRate(t *testing.T) {
	result := CheckFlag("click here to win free money", 5, 0)

	assert.True(t, result.Flagged)
	assert.Contains(t, result.Reason, "many recent requests from same phone")
	assert.Contains(t, result.Reason, "suspicious text pattern")
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
}

func TestCheckFlagRepeatedCharacters(t *testing.T) {
	result := CheckFlag("aaaaaaaaaa", 0, 0)
	assert.Contains(t, result.Reason, "suspicious text pattern")
}

func TestCheckFlagRateSignals(t *testing.T) {
	phoneOnly := CheckFlag("need food for family", 5, 0)
	assert.False(t, phoneOnly.Flagged)
	assert.InDelta(t, 0.3, phoneOnly.Confidence, 1e-9)

	both := CheckFlag("need food for family", 5, 10)
	assert.True(t, both.Flagged)
	assert.InDelta(t, 0.5, both.Confidence, 1e-9)
}

func TestCheckFlagShortDescription(t *testing.T) {
	result := CheckFlag("hlp", 0, 0)

	assert.False(t, result.Flagged)
	assert.Contains(t, result.Reason, "description too short")
	assert.InDelta(t, 0.1, result.Confidence, 1e-9)
}

func TestCheckFlagEmptyDescriptionNotShort(t *testing.T) {
	result := CheckFlag("", 0, 0)
	assert.False(t, result.Flagged)
	assert.Empty(t, result.Reason)
}

func TestCheckFlagTestKeyword(t *testing.T) {
	result := CheckFlag("just testing the app please ignore", 0, 0)
	assert.Contains(t, result.Reason, "suspicious text pattern")
}

func TestCheckFlagNeverBlocks(t *testing.T) {
	// even a maximally suspicious request only gets marked for review
	result := CheckFlag("test aaaaaaaa click here", 9, 20)
	assert.True(t, result.Flagged)
	assert.NotEmpty(t, result.Reason)
}
