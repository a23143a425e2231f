package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SlotQuery входные данные расчета доступных слотов
// Все данные собираются вызывающей стороной заново для каждого запроса
type SlotQuery struct {
	// Date календарная дата: используются только год, месяц и день,
	// которые интерпретируются в часовом поясе Timezone
	Date              time.Time
	Timezone          string // IANA, пусто - локальное время сервера
	AnchorOffsetHours int
	DurationMinutes   int
	Shifts            domain.WeeklyShiftTemplate
	Window            *domain.ReservationWindow // nil - ограничения окна нет
	Busy              domain.BusySets
	RequireEmployee   bool
	IgnoreCurrentTime bool
	Now               time.Time
}

// Service расчет доступности: список слотов на дату и проверка одного интервала.
// Не хранит состояния между вызовами, безопасен для конкурентного использования.
type Service struct {
	logger Logger
}

// NewService создает сервис доступности
// logger используется только для отчета о пропущенных записях шаблона, может быть nil
func NewService(logger Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{logger: logger}
}

// ListAvailableSlots возвращает упорядоченный по началу список слотов без дубликатов
//
// Шаги: бизнес-день -> генерация кандидатов -> смены и окно -> исключение занятых
// интервалов -> удаление дубликатов (start, end) -> сортировка.
func (s *Service) ListAvailableSlots(q SlotQuery) ([]domain.Slot, error) {
	if q.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidDuration, q.DurationMinutes)
	}
	if q.AnchorOffsetHours < domain.MinAnchorHours || q.AnchorOffsetHours > domain.MaxAnchorHours {
		return nil, fmt.Errorf("%w: got %d hours", ErrInvalidAnchor, q.AnchorOffsetHours)
	}

	loc, err := LoadLocation(q.Timezone)
	if err != nil {
		return nil, err
	}

	day := civilDay(q.Date, loc)
	now := q.Now.In(loc)

	candidates := Enumerate(day, q.DurationMinutes, q.AnchorOffsetHours, now, q.IgnoreCurrentTime)

	shifts, skipped := ResolveShifts(q.Shifts, day)
	for _, e := range skipped {
		s.logger.Warn("ListAvailableSlots: date=%s skipping shift: %v", day.Format(domain.DateFormat), e)
	}

	window, err := ResolveWindow(q.Window, day)
	if err != nil {
		s.logger.Warn("ListAvailableSlots: date=%s ignoring reservation window: %v", day.Format(domain.DateFormat), err)
	}

	kept := Filter(candidates, shifts, window, q.Busy, q.RequireEmployee)

	return toSortedSlots(kept), nil
}

// IsIntervalAvailable проверяет произвольный интервал только на конфликты с занятыми интервалами.
// Смены и окно бронирования не проверяются: интервал уже проверен по рабочему времени
// при генерации, здесь повторно проверяется лишь то, что его не заняли с тех пор.
// Employee учитываются только при requireEmployee.
func (s *Service) IsIntervalAvailable(candidate domain.Interval, busy domain.BusySets, requireEmployee bool) bool {
	return !isBusy(candidate, busy, requireEmployee)
}

// toSortedSlots удаляет дубликаты по паре (start, end) и сортирует по началу
func toSortedSlots(intervals []domain.Interval) []domain.Slot {
	type key struct {
		start int64
		end   int64
	}

	seen := make(map[key]struct{}, len(intervals))
	slots := make([]domain.Slot, 0, len(intervals))

	for _, i := range intervals {
		k := key{start: i.Start.UnixNano(), end: i.End.UnixNano()}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		slots = append(slots, domain.Slot{Start: i.Start, End: i.End})
	}

	sort.SliceStable(slots, func(a, b int) bool {
		if slots[a].Start.Equal(slots[b].Start) {
			return slots[a].End.Before(slots[b].End)
		}
		return slots[a].Start.Before(slots[b].Start)
	})

	return slots
}
