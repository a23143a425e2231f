package blocked

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// MaxBlockDuration максимальная длина одной блокировки
const MaxBlockDuration = 31 * 24 * time.Hour

// CreateRequest запрос на блокировку филиала
type CreateRequest struct {
	BranchID int64     `json:"-"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Reason   *string   `json:"reason,omitempty"`
}

// BlockedTimeResponse блокировка в ответе API
type BlockedTimeResponse struct {
	ID        int64   `json:"id"`
	BranchID  int64   `json:"branchId"`
	From      *string `json:"from"`
	To        *string `json:"to"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// FromDomain конвертирует domain.BlockedTime в ответ
func FromDomain(b *domain.BlockedTime) BlockedTimeResponse {
	return BlockedTimeResponse{
		ID:        b.ID,
		BranchID:  b.BranchID,
		From:      formatOptional(b.From),
		To:        formatOptional(b.To),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
