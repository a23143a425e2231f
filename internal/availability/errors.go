package availability

import "errors"

var (
	// ErrInvalidTimezone возвращается для неизвестного идентификатора часового пояса
	// Вызов прерывается, подмены на локальное время не происходит
	ErrInvalidTimezone = errors.New("availability: invalid timezone")

	// ErrMalformedTimeOfDay возвращается для смены или окна бронирования с некорректным HH:MM
	// Такая запись пропускается, остальные продолжают обрабатываться
	ErrMalformedTimeOfDay = errors.New("availability: malformed time of day")

	// ErrMalformedBusyInterval помечает занятый интервал без границ или с нечитаемыми границами
	// Такой интервал исключается из проверки конфликтов
	ErrMalformedBusyInterval = errors.New("availability: malformed busy interval")

	// ErrInvalidDuration возвращается для длительности слота <= 0
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidAnchor возвращается для смещения бизнес-дня вне диапазона 0..23 часа
	ErrInvalidAnchor = errors.New("availability: business day anchor out of range")
)
