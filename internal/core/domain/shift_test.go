package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShiftWindow(t *testing.T) {
	w := DefaultShiftWindow()
	assert.Equal(t, 5*time.Hour+30*time.Minute, w.Offset)
	assert.Equal(t, 9, w.DayStart)
	assert.Equal(t, 21, w.DayEnd)
}

func TestClassify_Boundaries(t *testing.T) {
	w := DefaultShiftWindow()

	// Local time is UTC+5:30: local 9:00 AM is 03:30 UTC.
	tests := []struct {
		name      string
		instant   string
		wantLabel ShiftLabel
		wantDay   string
	}{
		{
			name:      "exactly day start is day shift",
			instant:   "2024-03-10T03:30:00Z", // 09:00 local
			wantLabel: ShiftDay,
			wantDay:   "2024-03-10",
		},
		{
			name:      "one minute before day start is previous night",
			instant:   "2024-03-10T03:29:00Z", // 08:59 local
			wantLabel: ShiftNight,
			wantDay:   "2024-03-09",
		},
		{
			name:      "last minute of day shift",
			instant:   "2024-03-10T15:29:00Z", // 20:59 local
			wantLabel: ShiftDay,
			wantDay:   "2024-03-10",
		},
		{
			name:      "exactly day end is night shift of same day",
			instant:   "2024-03-10T15:30:00Z", // 21:00 local
			wantLabel: ShiftNight,
			wantDay:   "2024-03-10",
		},
		{
			name:      "midday",
			instant:   "2024-03-10T09:00:00Z", // 14:30 local
			wantLabel: ShiftDay,
			wantDay:   "2024-03-10",
		},
		{
			name:      "local early morning rolls back to previous day",
			instant:   "2024-03-10T20:00:00Z", // 01:30 local, next local day
			wantLabel: ShiftNight,
			wantDay:   "2024-03-09",
		},
		{
			name:      "late evening stays on same day",
			instant:   "2024-03-10T17:00:00Z", // 22:30 local
			wantLabel: ShiftNight,
			wantDay:   "2024-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := time.Parse(time.RFC3339, tt.instant)
			require.NoError(t, err)

			got := w.Classify(instant)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantDay, got.Day)
		})
	}
}

func TestClassify_NonUTCInput(t *testing.T) {
	w := DefaultShiftWindow()

	// The classifier normalises to UTC before applying the offset, so an
	// instant expressed in another zone classifies identically.
	zoned, err := time.Parse(time.RFC3339, "2024-03-10T09:00:00+05:30") // 03:30 UTC
	require.NoError(t, err)

	got := w.Classify(zoned)
	assert.Equal(t, ShiftDay, got.Label)
	assert.Equal(t, "2024-03-10", got.Day)
}
