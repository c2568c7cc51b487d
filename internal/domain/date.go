package domain

import "time"

const secondsPerDay = 24 * 60 * 60

// DateFormat is the layout used for calendar dates on every API surface
const DateFormat = "2006-01-02"

// DateOf returns the calendar day of t as midnight UTC
// The day is taken in t's own location before converting
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from `from` to `to`
// Negative when `to` is before `from`. Counted from Unix seconds, since a
// time.Duration saturates after about 292 years
func DaysBetween(from, to time.Time) int {
	return int((DateOf(to).Unix() - DateOf(from).Unix()) / secondsPerDay)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
