package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+977****567", MaskPhone("+9771234567"))
	assert.Equal(t, "9841***890", MaskPhone("9841567890"))
	assert.Equal(t, "*******", MaskPhone("1234567"))
	assert.Equal(t, "", MaskPhone(""))
	assert.Equal(t, "***", MaskPhone(" 123 "))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", TimeAgo(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", TimeAgo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", TimeAgo(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", TimeAgo(now.Add(-49*time.Hour), now))
}
