package create_blocked_time

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/blocked"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	From   time.Time `json:"from"` // RFC3339
	To     time.Time `json:"to"`   // RFC3339
	Reason *string   `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в запрос сервиса
func (r *CreateBlockedTimeRequest) ToServiceRequest(branchID int64) *blocked.CreateRequest {
	return &blocked.CreateRequest{
		BranchID: branchID,
		From:     r.From,
		To:       r.To,
		Reason:   r.Reason,
	}
}
