package domain

import "time"

// Interval absolute time span [Start, End]
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Slot bookable interval produced by availability resolution, always End > Start
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval converts the slot to a plain interval
func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// BusyInterval already committed span: a manual block, an existing reservation
// or one employee's commitment. Nil bounds mark a malformed record.
type BusyInterval struct {
	From *time.Time
	To   *time.Time
}

// NewBusyInterval builds a fully bounded busy interval
func NewBusyInterval(from, to time.Time) BusyInterval {
	return BusyInterval{From: &from, To: &to}
}

// Bounded reports whether both bounds are present and ordered
func (b BusyInterval) Bounded() bool {
	return b.From != nil && b.To != nil && !b.To.Before(*b.From)
}

// BusySets snapshot of committed intervals a candidate must not conflict with
type BusySets struct {
	Blocked  []BusyInterval
	Reserved []BusyInterval
	Employee []BusyInterval
}
