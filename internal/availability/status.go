package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ShiftStatus определяет, открыт ли филиал в момент now
//
// OPEN - now лежит в одной из смен бизнес-дня (границы включительно),
// CLOSING_SOON - до конца такой смены осталось меньше closingSoon,
// CLOSED - ни одна смена не содержит now.
// Учитываются и смены предыдущей даты: их хвост после полуночи тоже рабочее время.
func (s *Service) ShiftStatus(
	template domain.WeeklyShiftTemplate,
	timezone string,
	anchorOffsetHours int,
	now time.Time,
	closingSoon time.Duration,
) (domain.ShiftStatus, error) {
	local, err := Now(now, timezone)
	if err != nil {
		return domain.ShiftClosed, err
	}

	businessDate := BusinessDate(local, anchorOffsetHours)

	var shifts []domain.Interval
	for _, day := range []time.Time{businessDate.AddDate(0, 0, -1), businessDate} {
		resolved, skipped := ResolveShifts(template, day)
		for _, e := range skipped {
			s.logger.Warn("ShiftStatus: date=%s skipping shift: %v", day.Format(domain.DateFormat), e)
		}
		shifts = append(shifts, resolved...)
	}

	// Из смен, содержащих now, берем заканчивающуюся позже всех
	var (
		found  bool
		latest time.Time
	)
	for _, shift := range shifts {
		if ContainsInstant(shift, local) && (!found || shift.End.After(latest)) {
			found = true
			latest = shift.End
		}
	}

	switch {
	case !found:
		return domain.ShiftClosed, nil
	case latest.Sub(local) < closingSoon:
		return domain.ShiftClosingSoon, nil
	default:
		return domain.ShiftOpen, nil
	}
}

// IsWithinReservationWindow проверяет, что now попадает в окно бронирования услуги
// Используется для очереди (waiting): без окна очередь открыта всегда.
// Окно, переходящее через полночь, учитывается и хвостом предыдущей даты.
func IsWithinReservationWindow(window *domain.ReservationWindow, timezone string, now time.Time) (bool, error) {
	if window == nil {
		return true, nil
	}

	local, err := Now(now, timezone)
	if err != nil {
		return false, err
	}

	today := calendarDay(local)
	for _, day := range []time.Time{today.AddDate(0, 0, -1), today} {
		interval, err := resolveRange(window.AsRange(), day)
		if err != nil {
			return false, fmt.Errorf("reservation window: %w", err)
		}
		if ContainsInstant(interval, local) {
			return true, nil
		}
	}

	return false, nil
}
