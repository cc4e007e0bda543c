package drawdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 30, 0, 0, time.Local)
}

func TestNextDraw(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "first_before_cutoff",
			now:  at(2026, time.March, 1, 9),
			want: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "first_after_cutoff",
			now:  at(2026, time.March, 1, 16),
			want: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name: "mid_month",
			now:  at(2026, time.March, 7, 12),
			want: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name: "fifteenth_late",
			now:  at(2026, time.March, 15, 23),
			want: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sixteenth_before_cutoff",
			now:  at(2026, time.March, 16, 15),
			want: time.Date(2026, time.March, 16, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sixteenth_after_cutoff",
			now:  at(2026, time.March, 16, 16),
			want: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "end_of_month",
			now:  at(2026, time.March, 29, 10),
			want: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "december_rollover",
			now:  at(2026, time.December, 16, 16),
			want: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "december_31",
			now:  at(2026, time.December, 31, 23),
			want: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "leap_february",
			now:  at(2028, time.February, 29, 10),
			want: time.Date(2028, time.March, 1, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDraw(tt.now)
			assert.Equal(t, tt.want.Year(), got.Year())
			assert.Equal(t, tt.want.Month(), got.Month())
			assert.Equal(t, tt.want.Day(), got.Day())
		})
	}
}

func TestNextDrawFirstBeforeCutoffStaysOnFirst(t *testing.T) {
	// Every month: day 1 before 16:00 targets day 1 of that month.
	for m := time.January; m <= time.December; m++ {
		got := NextDraw(at(2026, m, 1, 8))
		assert.Equal(t, 1, got.Day(), "month %s", m)
		assert.Equal(t, m, got.Month(), "month %s", m)
	}
}

func TestLabel(t *testing.T) {
	d := time.Date(2026, time.August, 16, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "16 สิงหาคม 2569", Label(d))

	d = time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "1 มกราคม 2570", Label(d))
}
