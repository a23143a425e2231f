package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе
var ErrInvalidStatus = errors.New("invalid reservation status")

// GetUserReservationsRequest запрос на получение резерваций пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	StoreID    int64   `json:"storeId"`
	BranchID   int64   `json:"branchId"`
	ServiceID  int64   `json:"serviceId"`
	EmployeeID *int64  `json:"employeeId,omitempty"`
	From       string  `json:"from"` // RFC3339
	To         string  `json:"to"`   // RFC3339
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ReservationListResponse список резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		StoreID:    r.StoreID,
		BranchID:   r.BranchID,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		From:       r.From.Format(time.RFC3339),
		To:         r.To.Format(time.RFC3339),
		Status:     string(r.Status),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, len(list))
	for i, r := range list {
		result[i] = *FromDomainReservation(r)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus проверяет и конвертирует строковый статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch s := domain.ReservationStatus(status); s {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusServing,
		domain.StatusDone,
		domain.StatusCanceled,
		domain.StatusNoShow:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
