package domain

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// FarFuture is the sentinel upper bound used when a balance query has no
// as-of date: every transaction's date compares <= to it.
var FarFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ToDate strips the time component, normalizing t to UTC midnight.
func ToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	return ToDate(time.Now().UTC())
}
