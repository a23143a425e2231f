package domain

import "time"

// Branch operating settings of a store branch
type Branch struct {
	ID       int64
	StoreID  int64
	Name     string
	Timezone string // IANA name, empty = server local time
	// BusinessDayAnchorHours hours past calendar midnight where the operational day starts
	BusinessDayAnchorHours *int
	WorkingShifts          WeeklyShiftTemplate
	IsNotReceivingTickets  bool
}

// AnchorOrDefault returns the configured anchor or def when not set
func (b *Branch) AnchorOrDefault(def int) int {
	if b.BusinessDayAnchorHours == nil {
		return def
	}
	return *b.BusinessDayAnchorHours
}

// Service bookable service of a branch
type Service struct {
	ID              int64
	BranchID        int64
	Name            string
	IsReservation   bool
	DurationMinutes int
	// ReservationTime nil = no service-level gate, only shifts apply
	ReservationTime    *ReservationWindow
	RequireEmployee    bool
	AdvanceBookingDays int // 0 = unlimited
	NotActive          bool
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance reservations can be made
func (s *Service) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// ShiftStatus state of a branch at a given instant
type ShiftStatus string

const (
	ShiftOpen        ShiftStatus = "OPEN"
	ShiftClosed      ShiftStatus = "CLOSED"
	ShiftClosingSoon ShiftStatus = "CLOSING_SOON"
)

// BranchStatus snapshot of a branch's open state
type BranchStatus struct {
	BranchID    int64
	Status      ShiftStatus
	At          time.Time
	ServiceID   *int64
	WaitingOpen *bool // nil when no service was asked for
}
