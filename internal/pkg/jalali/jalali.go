// Package jalali wraps the Persian (solar Hijri) calendar conversions used
// for display dates and report ranges. Stored timestamps stay Gregorian;
// only renderings and range keys go through this package.
package jalali

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

const (
	dateLayout     = "yyyy/MM/dd"
	dateTimeLayout = "yyyy/MM/dd HH:mm:ss"
)

// FromTime converts a Gregorian instant to its Jalali equivalent.
func FromTime(t time.Time) ptime.Time {
	return ptime.New(t)
}

// ToTime converts a Jalali date at midnight local time to a Gregorian instant.
func ToTime(year, month, day int) time.Time {
	return ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, time.Local).Time()
}

// FormatDate renders a Gregorian instant as a Jalali yyyy/MM/dd string, the
// form stored in the attendance table's display column.
func FormatDate(t time.Time) string {
	return ptime.New(t).Format(dateLayout)
}

// FormatDateTime renders a Gregorian instant as a full Jalali timestamp.
func FormatDateTime(t time.Time) string {
	return ptime.New(t).Format(dateTimeLayout)
}

// MonthName returns the Persian name of a 1-12 Jalali month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return ptime.Month(month).String()
}

// ValidateDate reports whether year/month/day is a well-formed Jalali date.
// ptime.Date normalizes overflow the way time.Date does, so a round-trip
// mismatch means the input was out of range.
func ValidateDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	pt := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, time.Local)
	return pt.Year() == year && int(pt.Month()) == month && pt.Day() == day
}

// MonthBounds returns the half-open Gregorian range [start, end) covering one
// Jalali month. Month 12 rolls over into the first month of the next year.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	start := ToTime(year, month, 1)

	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	end := ToTime(nextYear, nextMonth, 1)

	return start, end, nil
}
