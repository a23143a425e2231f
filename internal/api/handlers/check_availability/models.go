package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	ServiceID  int64     `json:"serviceId"`
	EmployeeID *int64    `json:"employeeId,omitempty"`
	From       time.Time `json:"from"` // RFC3339
	To         time.Time `json:"to"`   // RFC3339
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(branchID int64) *checkAvailability.Request {
	return &checkAvailability.Request{
		BranchID:   branchID,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		From:       r.From,
		To:         r.To,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{Available: resp.Available}
}
