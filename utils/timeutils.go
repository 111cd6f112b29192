package utils

import (
	"time"
)

// DateLayout is the schema date format (xs:date without offset).
const DateLayout = "2006-01-02"

// PaymentTermDays is the fixed number of calendar days between issue and due date.
const PaymentTermDays = 30

// DateOnly returns the calendar date of t in its own location, dropping the time of day.
func DateOnly(t time.Time) string {
	return t.Format(DateLayout)
}

// DueDate adds days calendar days to issue. Month and year rollover follow
// time.AddDate, so 2025-01-31 + 30 days is 2025-03-02.
func DueDate(issue time.Time, days int) time.Time {
	return issue.AddDate(0, 0, days)
}

// DueDateString is DateOnly(DueDate(issue, days)).
func DueDateString(issue time.Time, days int) string {
	return DateOnly(DueDate(issue, days))
}
