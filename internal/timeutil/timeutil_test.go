package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		elapsed  int
		expected string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{60, "01:00"},
		{605, "10:05"},
		{3725, "62:05"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatClock(tc.elapsed))
	}
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 15.0, RoundTo(900.0/60, 1), 1e-9)
	assert.InDelta(t, 1.0, RoundTo(60.0/60, 1), 1e-9)
	assert.InDelta(t, 0.2, RoundTo(10.0/60, 1), 1e-9)
	assert.InDelta(t, 2.5, RoundTo(150.0/60, 1), 1e-9)
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.Local)

	assert.Equal(t, "2024-03-01", DateKey(d))
	assert.Equal(t, "2024-03-01", DateKey(RoundToStart(d)))
	assert.Equal(t, "2024-03-01", DateKey(RoundToEnd(d)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2024-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", DateKey(got))
}
