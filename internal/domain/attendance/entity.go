package attendance

import "time"

type Attendance struct {
	ID       string
	WorkerID string

	// EntryTime and ExitTime are nil until the corresponding event happens.
	// A record with ExitTime nil is an open session.
	EntryTime *time.Time
	ExitTime  *time.Time

	// Date is the calendar day of entry (local midnight), the grouping key
	// for the one-open-session invariant and for reports.
	Date time.Time

	// JalaliDate is the stored yyyy/MM/dd rendering of Date, kept redundantly
	// for display.
	JalaliDate string

	TotalHours float64

	// Joined worker identity, populated by the all-records query.
	WorkerName      *string
	PersonnelNumber *string
}

// IsOpen reports whether the session has an entry but no exit yet.
func (a *Attendance) IsOpen() bool {
	return a.EntryTime != nil && a.ExitTime == nil
}

// ComputeTotalHours re-derives TotalHours from the timestamps. Missing
// timestamps or an exit at or before the entry yield zero, never a negative
// value; invalid intervals are clamped, not rejected.
func (a *Attendance) ComputeTotalHours() {
	if a.EntryTime == nil || a.ExitTime == nil {
		a.TotalHours = 0
		return
	}
	d := a.ExitTime.Sub(*a.EntryTime)
	if d <= 0 {
		a.TotalHours = 0
		return
	}
	a.TotalHours = d.Hours()
}
