// Package drawdate resolves the next official Thai government lottery draw
// date. Draws happen on the 1st and 16th of every month; results for a draw
// are published by 16:00 local time, after which the next draw becomes the
// target.
package drawdate

import (
	"fmt"
	"time"
)

// cutoffHour is the local hour after which a draw day's results are out.
const cutoffHour = 16

// NextDraw returns the draw date targeted at the given instant. Pure and
// total: deterministic for any input, including month-end and year rollover.
func NextDraw(now time.Time) time.Time {
	day := now.Day()
	switch {
	case day == 1 && now.Hour() < cutoffHour:
		return onDay(now, 1)
	case day < 16 || (day == 16 && now.Hour() < cutoffHour):
		return onDay(now, 16)
	default:
		// Past the 16th's cutoff: first of the next month. AddDate handles
		// December and leap years.
		return onDay(now, 1).AddDate(0, 1, 0)
	}
}

func onDay(now time.Time, day int) time.Time {
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}

var thaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// Label formats a draw date the way the lottery authority publishes it:
// day, Thai month name, Buddhist-era year.
func Label(d time.Time) string {
	return fmt.Sprintf("%d %s %d", d.Day(), thaiMonths[d.Month()-1], d.Year()+543)
}
