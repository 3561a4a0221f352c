package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"01:30", 90},
		{"08:00", 480},
		{"25:00", 1500},
		{"8:05", 485},
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"08:xx", 0},
		{"08:75", 0},
		{"-1:00", 0},
		{"07", 420},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeToMinutes(tc.in), "input=%q", tc.in)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "01:30", MinutesToTime(90))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "25:00", MinutesToTime(1500))
	assert.Equal(t, "120:05", MinutesToTime(7205))
	assert.Equal(t, "00:00", MinutesToTime(-15))
}

func TestClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "00:59", "07:45", "23:59", "24:00", "25:00", "99:30"} {
		assert.Equal(t, s, MinutesToTime(TimeToMinutes(s)), "round trip %q", s)
	}
}

func TestDecimalHours(t *testing.T) {
	assert.Equal(t, "1.5", DecimalHours(90).String())
	assert.Equal(t, "0.33", DecimalHours(20).String())
	assert.Equal(t, "37.5", DecimalHours(2250).String())
	assert.True(t, DecimalHours(0).IsZero())
}
