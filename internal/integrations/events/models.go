package events

import "time"

const (
	// DefaultTopic топик событий о резервациях
	DefaultTopic = "reservations"

	// TypeReservationCreated тип события о новой резервации
	TypeReservationCreated = "reservation.created.v1"

	// TypeReservationCanceled тип события об отмене резервации
	TypeReservationCanceled = "reservation.canceled.v1"
)

// ReservationCreated payload события reservation.created.v1
type ReservationCreated struct {
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	StoreID       int64     `json:"store_id"`
	BranchID      int64     `json:"branch_id"`
	ServiceID     int64     `json:"service_id"`
	EmployeeID    *int64    `json:"employee_id,omitempty"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ReservationCanceled payload события reservation.canceled.v1
type ReservationCanceled struct {
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	BranchID      int64     `json:"branch_id"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	OccurredAt    time.Time `json:"occurred_at"`
}
