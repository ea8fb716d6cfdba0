package plan

import "time"

// dueDate projects the due date of installment i (0-based) from start.
func dueDate(start time.Time, cadence Cadence, i int) time.Time {
	if cadence == CadenceBiweekly {
		return start.AddDate(0, 0, 15*(i+1))
	}
	return addMonthsClamped(start, i+1)
}

// addMonthsClamped adds calendar months, clamping the day to the last
// valid day of the target month (Jan 31 + 1 month = Feb 28/29). This is
// deliberately not time.AddDate, which normalizes the overflow into the
// next month instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	// time.Date normalizes the month overflow for us on day 1.
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(first.Year(), first.Month(), d, h, min, sec, t.Nanosecond(), t.Location())
}

func lastDayOfMonth(y int, m time.Month) int {
	// day 0 of the following month
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
