package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "0", FormatTokens(0))
	assert.Equal(t, "999", FormatTokens(999))
	assert.Equal(t, "1.0K", FormatTokens(1_000))
	assert.Equal(t, "450.5K", FormatTokens(450_500))
	assert.Equal(t, "1.2M", FormatTokens(1_230_000))
}
