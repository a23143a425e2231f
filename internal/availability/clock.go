package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// LoadLocation возвращает часовой пояс по IANA-имени
// Пустое имя означает локальное время сервера
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return loc, nil
}

// Now проецирует момент now в часовой пояс timezone
func Now(now time.Time, timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}

// BusinessDayBounds возвращает операционный день даты date:
// [date + anchor, next date + anchor) в часовом поясе date
func BusinessDayBounds(date time.Time, anchorOffsetHours int) domain.Interval {
	y, m, d := date.Date()
	loc := date.Location()
	return domain.Interval{
		Start: time.Date(y, m, d, anchorOffsetHours, 0, 0, 0, loc),
		End:   time.Date(y, m, d+1, anchorOffsetHours, 0, 0, 0, loc),
	}
}

// BusinessDate возвращает полночь календарной даты, чей бизнес-день содержит instant
// Например, при anchor=3 момент 01:30 субботы относится к пятнице
func BusinessDate(instant time.Time, anchorOffsetHours int) time.Time {
	day := calendarDay(instant)
	if instant.Before(BusinessDayBounds(day, anchorOffsetHours).Start) {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// calendarDay полночь календарной даты t в ее часовом поясе
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// civilDay интерпретирует год-месяц-день date как дату в часовом поясе loc
func civilDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// isSameDay проверяет, что два момента приходятся на одну календарную дату в поясе a
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
