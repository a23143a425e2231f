package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday canonical weekday identifier used as the shift template key.
// Values follow time.Weekday (Sunday-first) so conversion is a cast.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Weekdays lists all seven weekdays, Sunday first
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf returns the weekday of the calendar date t in t's location
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// ParseWeekday parses a canonical weekday name, case-insensitive
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// Valid reports whether w is one of the seven canonical weekdays
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Next returns the following weekday
func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// MarshalText encodes the weekday as its canonical name (JSON map keys included)
func (w Weekday) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(w))
	}
	return []byte(weekdayNames[w]), nil
}

// UnmarshalText decodes a canonical weekday name
func (w *Weekday) UnmarshalText(b []byte) error {
	parsed, err := ParseWeekday(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
