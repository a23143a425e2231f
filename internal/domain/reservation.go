package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusServing   ReservationStatus = "serving"
	StatusDone      ReservationStatus = "done"
	StatusCanceled  ReservationStatus = "canceled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation a scheduled interval booked by a customer
type Reservation struct {
	ID         int64
	UserID     int64
	StoreID    int64
	BranchID   int64
	ServiceID  int64
	EmployeeID *int64
	From       time.Time
	To         time.Time
	Status     ReservationStatus
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the reservation still occupies its interval
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCanceled && r.Status != StatusNoShow
}

// BusyInterval converts the reservation to a busy interval
func (r *Reservation) BusyInterval() BusyInterval {
	return NewBusyInterval(r.From, r.To)
}

// BlockedTime manual block of a branch (maintenance, holiday, private event)
type BlockedTime struct {
	ID        int64
	BranchID  int64
	From      *time.Time
	To        *time.Time
	Reason    *string
	CreatedAt time.Time
}

// BusyInterval converts the block to a busy interval
func (b *BlockedTime) BusyInterval() BusyInterval {
	return BusyInterval{From: b.From, To: b.To}
}

// BusyPeriodFilter selects committed intervals intersecting [From, To)
type BusyPeriodFilter struct {
	BranchID   int64
	ServiceID  *int64
	EmployeeID *int64
	From       time.Time
	To         time.Time
}
