package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Contains проверяет, что candidate целиком лежит в container, обе границы включительно.
// Слот, заканчивающийся ровно в момент закрытия смены, допустим.
func Contains(container, candidate domain.Interval) bool {
	return !candidate.Start.Before(container.Start) && !candidate.End.After(container.End)
}

// ContainsInstant проверяет, что момент t лежит в [container.Start, container.End]
func ContainsInstant(container domain.Interval, t time.Time) bool {
	return !t.Before(container.Start) && !t.After(container.End)
}

// ContainedInAny проверяет Contains хотя бы для одного контейнера
func ContainedInAny(containers []domain.Interval, candidate domain.Interval) bool {
	for _, c := range containers {
		if Contains(c, candidate) {
			return true
		}
	}
	return false
}

// Conflicts проверяет, что интервалы a и b имеют общий момент, не сводящийся к касанию границ.
// Интервалы, идущие встык (a.End == b.Start или a.Start == b.End), не конфликтуют.
// Предикат симметричен.
func Conflicts(a, b domain.Interval) bool {
	if a.End.Equal(b.Start) || a.Start.Equal(b.End) {
		return false
	}
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// ConflictsWithBusy проверяет конфликт кандидата с занятым интервалом
// Интервал без границ (или с перевернутыми границами) не конфликтует никогда
func ConflictsWithBusy(candidate domain.Interval, busy domain.BusyInterval) bool {
	if !busy.Bounded() {
		return false
	}
	return Conflicts(candidate, domain.Interval{Start: *busy.From, End: *busy.To})
}

// ConflictsWithAny проверяет конфликт кандидата хотя бы с одним занятым интервалом
func ConflictsWithAny(candidate domain.Interval, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if ConflictsWithBusy(candidate, b) {
			return true
		}
	}
	return false
}
