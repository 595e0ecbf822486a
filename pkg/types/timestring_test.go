package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hours and minutes", input: "09:30", want: "09:30"},
		{name: "postgres time with seconds", input: "18:00:00", want: "18:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "bad minutes", input: "10:75", wantErr: true},
		{name: "past end of day", input: "24:30", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("17:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:15"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.Equal(t, 570, TimeString("09:30").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
