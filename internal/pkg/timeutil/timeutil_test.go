package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		expected float64
	}{
		{"regular day", "08:00", "16:00", 8},
		{"half hours", "08:30", "17:00", 8.5},
		{"overnight", "22:00", "06:00", 8},
		{"overnight minutes", "23:45", "00:15", 0.5},
		{"equal is zero", "09:00", "09:00", 0},
		{"missing in", "", "16:00", 0},
		{"missing out", "08:00", "", 0},
		{"malformed", "8h", "16:00", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, HoursBetween(c.in, c.out), 1e-9)
		})
	}
}

func TestHoursBetween_WraparoundProperty(t *testing.T) {
	for start := 0; start < 24*60; start += 37 {
		for end := 0; end < start; end += 41 {
			in := clock(start)
			out := clock(end)
			want := float64(end+24*60-start) / 60
			assert.InDelta(t, want, HoursBetween(in, out), 1e-9, "%s -> %s", in, out)
		}
	}
}

func TestHoursBetween_KeepsPrecision(t *testing.T) {
	// 20 minutes is 0.333.. hours; rounding each day would drift.
	var total float64
	for i := 0; i < 30; i++ {
		total += HoursBetween("08:00", "08:20")
	}
	assert.InDelta(t, 10.0, total, 1e-9)
	assert.Equal(t, 0.33, Round2(HoursBetween("08:00", "08:20")))
}

func TestMinutesOfDay(t *testing.T) {
	m, ok := MinutesOfDay("08:15")
	assert.True(t, ok)
	assert.Equal(t, 495, m)

	_, ok = MinutesOfDay("25:00")
	assert.False(t, ok)
	_, ok = MinutesOfDay("")
	assert.False(t, ok)
}

func TestMonthDiff(t *testing.T) {
	assert.Equal(t, 1, MonthDiff("2024-01", "2024-01"))
	assert.Equal(t, 3, MonthDiff("2024-01", "2024-03"))
	assert.Equal(t, 14, MonthDiff("2023-11", "2024-12"))
	assert.Equal(t, 0, MonthDiff("2024-03", "2024-01"))
	assert.Equal(t, 0, MonthDiff("2024-03", "2023-01"))
	assert.Equal(t, 0, MonthDiff("bad", "2024-01"))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive("2024-02-10", "2024-02-10"))
	assert.Equal(t, 5, DaysInclusive("2024-02-27", "2024-03-02"))
	assert.Equal(t, 0, DaysInclusive("2024-02-10", "2024-02-09"))
}

func TestFormatChecks(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("7:00"))
	assert.False(t, ValidClock("24:00"))
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.True(t, ValidMonth("2024-12"))
	assert.False(t, ValidMonth("2024-13"))
	assert.Equal(t, "2024-05", MonthOf("2024-05-17"))
	assert.True(t, InMonth("2024-05-17", "2024-05"))
	assert.False(t, InMonth("2024-05-17", ""))
}

func clock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return string([]byte{byte('0' + h/10), byte('0' + h%10), ':', byte('0' + m/10), byte('0' + m%10)})
}
