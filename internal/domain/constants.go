package domain

// Default configuration values
const (
	DefaultBusinessDayAnchorHours = 3
	DefaultClosingSoonMinutes     = 60
	DefaultAdvanceBookingDays     = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinDurationMinutes          = 1
	MaxDurationMinutes          = 24 * 60
	MinAnchorHours              = 0
	MaxAnchorHours              = 23
	MaxNotesLength              = 500
	MaxReservationLengthMinutes = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that no longer occupy their interval
var InactiveStatuses = []ReservationStatus{
	StatusCanceled,
	StatusNoShow,
}
