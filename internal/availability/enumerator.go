package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Enumerate генерирует все структурно возможные кандидаты бизнес-дня date
// шагом durationMinutes, начиная с начала бизнес-дня.
//
// Если ignoreCurrentTime=false и date совпадает с календарной датой now,
// кандидаты с началом строго раньше now отбрасываются сразу при генерации.
// Последний кандидат может выходить за конец бизнес-дня. Цикл останавливается,
// как только начало достигает конца бизнес-дня.
func Enumerate(date time.Time, durationMinutes, anchorOffsetHours int, now time.Time, ignoreCurrentTime bool) []domain.Interval {
	if durationMinutes <= 0 {
		return nil
	}

	bounds := BusinessDayBounds(date, anchorOffsetHours)
	step := time.Duration(durationMinutes) * time.Minute
	skipPast := !ignoreCurrentTime && isSameDay(date, now)

	candidates := make([]domain.Interval, 0, int(bounds.Duration()/step)+1)
	for start := bounds.Start; start.Before(bounds.End); start = start.Add(step) {
		if skipPast && start.Before(now) {
			continue
		}
		candidates = append(candidates, domain.Interval{Start: start, End: start.Add(step)})
	}

	return candidates
}
