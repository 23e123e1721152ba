package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	in := time.Date(2025, 3, 10, 22, 45, 12, 999, loc)

	got := NormalizeDate(in)

	// 22:45 UTC-5 is already the next day in UTC.
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, NormalizeDate(got))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseDate(FormatDate(d))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))
}
