package availability

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Filter оставляет кандидатов, которые:
//  1. целиком лежат хотя бы в одной смене из shifts;
//  2. целиком лежат хотя бы в одной проекции окна бронирования (window == nil - окна нет);
//  3. не конфликтуют ни с одним интервалом busy.Blocked и busy.Reserved;
//  4. при requireEmployee не конфликтуют с busy.Employee. Без флага busy.Employee не читается вовсе.
func Filter(
	candidates []domain.Interval,
	shifts []domain.Interval,
	window []domain.Interval,
	busy domain.BusySets,
	requireEmployee bool,
) []domain.Interval {
	kept := make([]domain.Interval, 0, len(candidates))

	for _, c := range candidates {
		if !ContainedInAny(shifts, c) {
			continue
		}
		if window != nil && !ContainedInAny(window, c) {
			continue
		}
		if isBusy(c, busy, requireEmployee) {
			continue
		}
		kept = append(kept, c)
	}

	return kept
}

// isBusy единая проверка занятости для фильтра и для IsIntervalAvailable
func isBusy(candidate domain.Interval, busy domain.BusySets, requireEmployee bool) bool {
	if ConflictsWithAny(candidate, busy.Blocked) || ConflictsWithAny(candidate, busy.Reserved) {
		return true
	}
	return requireEmployee && ConflictsWithAny(candidate, busy.Employee)
}
