package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int // minutes since midnight
		wantErr bool
	}{
		{name: "full form", input: "10:30", want: 630},
		{name: "short hour form", input: "9:00", want: 540},
		{name: "unaligned minutes accepted", input: "9:15", want: 555},
		{name: "midnight", input: "0:00", want: 0},
		{name: "end of day", input: "23:30", want: 1410},
		{name: "no colon", input: "1030", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "negative", input: "-1:00", wantErr: true},
		{name: "with seconds", input: "10:30:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	got, err := ParseTimeOfDay("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got.String())

	assert.Equal(t, "23:30", TimeOfDayFromMinutes(1410).String())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)

	assert.Equal(t, "10:30", start.AddMinutes(30).String())
	assert.Equal(t, "11:30", start.AddMinutes(90).String())
}

func TestAreConsecutive(t *testing.T) {
	assert.True(t, AreConsecutive(TimeOfDayFromMinutes(600), TimeOfDayFromMinutes(630)))
	assert.False(t, AreConsecutive(TimeOfDayFromMinutes(600), TimeOfDayFromMinutes(660)))
	assert.False(t, AreConsecutive(TimeOfDayFromMinutes(630), TimeOfDayFromMinutes(600)))
	assert.False(t, AreConsecutive(TimeOfDayFromMinutes(600), TimeOfDayFromMinutes(600)))
}

func TestTimeOfDayOf(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, "14:45", TimeOfDayOf(now).String())
}
