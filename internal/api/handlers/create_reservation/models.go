package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StoreID    int64     `json:"storeId"`
	BranchID   int64     `json:"branchId"`
	ServiceID  int64     `json:"serviceId"`
	EmployeeID *int64    `json:"employeeId,omitempty"`
	Start      time.Time `json:"start"` // "2025-10-15T10:00:00+03:00"
	Notes      *string   `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	StoreID    int64   `json:"storeId"`
	BranchID   int64   `json:"branchId"`
	ServiceID  int64   `json:"serviceId"`
	EmployeeID *int64  `json:"employeeId,omitempty"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) *createReservation.Request {
	return &createReservation.Request{
		UserID:     userID,
		StoreID:    r.StoreID,
		BranchID:   r.BranchID,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		Start:      r.Start,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		StoreID:    resp.StoreID,
		BranchID:   resp.BranchID,
		ServiceID:  resp.ServiceID,
		EmployeeID: resp.EmployeeID,
		From:       resp.From.Format(time.RFC3339),
		To:         resp.To.Format(time.RFC3339),
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
