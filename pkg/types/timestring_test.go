package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"09-00", true},
		{"", true},
		{"garbage", true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.input, ts.String())
			}
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 13, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		start    TimeString
		minutes  int
		expected TimeString
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:45", 30, "24:15"}, // past midnight, comparable but not storable
		{"10:00", 0, "10:00"},
		{"10:30", -30, "10:00"},
	}

	for _, tc := range cases {
		result, err := tc.start.AddMinutes(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result)
	}

	_, err := TimeString("00:10").AddMinutes(-30)
	assert.Error(t, err)

	_, err = TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("14:00")))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 7, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(123))
}
