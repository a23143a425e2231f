package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ParseBusyInterval конвертирует пару строк from_date_time/to_date_time (RFC3339) в BusyInterval
// Отсутствующая или нечитаемая граница становится nil, такой интервал никогда не конфликтует.
// Ошибка ErrMalformedBusyInterval возвращается только для отчета, результат пригоден всегда.
func ParseBusyInterval(from, to *string) (domain.BusyInterval, error) {
	var (
		interval domain.BusyInterval
		problems []string
	)

	if t, ok := parseInstant(from); ok {
		interval.From = &t
	} else {
		problems = append(problems, "from")
	}

	if t, ok := parseInstant(to); ok {
		interval.To = &t
	} else {
		problems = append(problems, "to")
	}

	if len(problems) > 0 {
		return interval, fmt.Errorf("%w: bad %s", ErrMalformedBusyInterval, strings.Join(problems, ", "))
	}
	if !interval.Bounded() {
		return interval, fmt.Errorf("%w: to before from", ErrMalformedBusyInterval)
	}

	return interval, nil
}

func parseInstant(s *string) (time.Time, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
