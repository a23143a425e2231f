package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// ShiftRange one working range of a weekday, e.g. 09:00-17:00.
// A To earlier than (or equal to) From denotes a range crossing into the next calendar date.
type ShiftRange struct {
	From types.TimeString `json:"from"`
	To   types.TimeString `json:"to"`
}

// CrossesMidnight reports whether the range ends on the next calendar date.
// Malformed ranges report false.
func (r ShiftRange) CrossesMidnight() bool {
	from, errFrom := r.From.Minutes()
	to, errTo := r.To.Minutes()
	if errFrom != nil || errTo != nil {
		return false
	}
	return to <= from
}

// WeeklyShiftTemplate working ranges per weekday.
// Ranges of one weekday are caller-supplied: they need not be sorted or disjoint.
type WeeklyShiftTemplate map[Weekday][]ShiftRange

// For returns the ranges configured for the weekday (nil when closed)
func (t WeeklyShiftTemplate) For(day Weekday) []ShiftRange {
	if t == nil {
		return nil
	}
	return t[day]
}

// IsEmpty reports whether no weekday has any range
func (t WeeklyShiftTemplate) IsEmpty() bool {
	for _, ranges := range t {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}

// ReservationWindow per-service daily gate, narrower than or equal to the branch shift.
// Uses the same cross-midnight convention as ShiftRange.
type ReservationWindow struct {
	From types.TimeString `json:"from"`
	To   types.TimeString `json:"to"`
}

// AsRange exposes the window as a ShiftRange so both resolve the same way
func (w ReservationWindow) AsRange() ShiftRange {
	return ShiftRange{From: w.From, To: w.To}
}
