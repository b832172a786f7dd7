package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var bookingCodePattern = regexp.MustCompile(`^BK-\d{8}-\d{6}-\d{4}$`)

func TestGenerateBookingCode_Format(t *testing.T) {
	code := GenerateBookingCode()
	assert.Regexp(t, bookingCodePattern, code)
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	a := GenerateSessionToken()
	b := GenerateSessionToken()
	assert.NotEqual(t, a, b)
}

func TestParseUUID_RoundTrip(t *testing.T) {
	id := GenerateUUID()
	parsed, err := ParseUUID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseUUID_Invalid(t *testing.T) {
	_, err := ParseUUID("bukan-uuid")
	assert.Error(t, err)
}
