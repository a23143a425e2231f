package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ResolveShifts возвращает абсолютные интервалы смен, действующих в бизнес-день даты date.
//
// Берутся смены дня недели date и следующей календарной даты: ночная смена
// пятницы 22:00-02:00 и ранняя смена субботы 00:00-02:00 обе попадают в бизнес-день пятницы.
// Смены следующей даты привязываются к следующей дате. Если to <= from, конец
// переносится на сутки вперед. Смены не сортируются и не объединяются.
//
// Смены с некорректным HH:MM пропускаются, причина каждого пропуска возвращается в skipped.
func ResolveShifts(template domain.WeeklyShiftTemplate, date time.Time) (shifts []domain.Interval, skipped []error) {
	day := calendarDay(date)

	for _, anchor := range []time.Time{day, day.AddDate(0, 0, 1)} {
		weekday := domain.WeekdayOf(anchor)
		for i, r := range template.For(weekday) {
			interval, err := resolveRange(r, anchor)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("%s shift #%d: %w", weekday, i, err))
				continue
			}
			shifts = append(shifts, interval)
		}
	}

	return shifts, skipped
}

// ResolveWindow проецирует окно бронирования на date и следующую дату, так же как смены
// nil окно означает отсутствие ограничения: возвращается nil без ошибки
// Для некорректного окна возвращается nil и ErrMalformedTimeOfDay - ограничение не применяется
func ResolveWindow(window *domain.ReservationWindow, date time.Time) ([]domain.Interval, error) {
	if window == nil {
		return nil, nil
	}

	day := calendarDay(date)
	projections := make([]domain.Interval, 0, 2)

	for _, anchor := range []time.Time{day, day.AddDate(0, 0, 1)} {
		interval, err := resolveRange(window.AsRange(), anchor)
		if err != nil {
			return nil, fmt.Errorf("reservation window: %w", err)
		}
		projections = append(projections, interval)
	}

	return projections, nil
}

// resolveRange привязывает диапазон времени суток к календарной дате day
func resolveRange(r domain.ShiftRange, day time.Time) (domain.Interval, error) {
	from, err := r.From.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: from: %v", ErrMalformedTimeOfDay, err)
	}

	to, err := r.To.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: to: %v", ErrMalformedTimeOfDay, err)
	}

	if !to.After(from) {
		to, _ = r.To.On(day.AddDate(0, 0, 1))
	}

	return domain.Interval{Start: from, End: to}, nil
}
