package get_branch_status

import (
	"time"

	getBranchStatus "github.com/m04kA/SMC-ReservationService/internal/usecase/get_branch_status"
)

// BranchStatusResponse HTTP response model
type BranchStatusResponse struct {
	BranchID           int64  `json:"branchId"`
	Status             string `json:"status"` // OPEN, CLOSED, CLOSING_SOON
	At                 string `json:"at"`
	Timezone           string `json:"timezone"`
	IsReceivingTickets bool   `json:"isReceivingTickets"`
	ServiceID          *int64 `json:"serviceId,omitempty"`
	WaitingOpen        *bool  `json:"waitingOpen,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBranchStatus.Response) *BranchStatusResponse {
	return &BranchStatusResponse{
		BranchID:           resp.Status.BranchID,
		Status:             string(resp.Status.Status),
		At:                 resp.Status.At.Format(time.RFC3339),
		Timezone:           resp.Timezone,
		IsReceivingTickets: resp.IsReceivingTickets,
		ServiceID:          resp.Status.ServiceID,
		WaitingOpen:        resp.Status.WaitingOpen,
	}
}
