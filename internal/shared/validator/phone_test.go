package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAndFormatPhone(t *testing.T) {
	assert.Equal(t, "01012345678", NormalizePhone("010-1234-5678"))
	assert.Equal(t, "010-1234-5678", FormatPhone("01012345678"))
	assert.Equal(t, "010-123-4567", FormatPhone("0101234567"))
	assert.Equal(t, "1234", FormatPhone(" 1234 "))
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "5678", LastFour("010-1234-5678"))
	assert.Equal(t, "", LastFour("12"))
}

func TestPhoneRegex(t *testing.T) {
	assert.True(t, phoneRegex.MatchString("010-1234-5678"))
	assert.True(t, phoneRegex.MatchString("01012345678"))
	assert.False(t, phoneRegex.MatchString("02-123-4567"))
	assert.False(t, phoneRegex.MatchString("5678"))
}

func TestHHMMRegex(t *testing.T) {
	assert.True(t, hhmmRegex.MatchString("09:30"))
	assert.True(t, hhmmRegex.MatchString("23:59"))
	assert.False(t, hhmmRegex.MatchString("24:00"))
	assert.False(t, hhmmRegex.MatchString("9:30"))
}
