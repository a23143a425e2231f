package get_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// ReservationDetails карточка резервации для клиента
type ReservationDetails struct {
	models.ReservationResponse
	DurationMinutes int  `json:"durationMinutes"`
	Cancelable      bool `json:"cancelable"` // PATCH /cancel сейчас пройдет
}

// FromServiceResponse дополняет ответ сервиса длительностью и признаком возможной отмены
// Отменить можно активную резервацию до ее начала
func FromServiceResponse(resp *models.ReservationResponse, now time.Time) (*ReservationDetails, error) {
	from, err := time.Parse(time.RFC3339, resp.From)
	if err != nil {
		return nil, fmt.Errorf("reservation id=%d has malformed start: %w", resp.ID, err)
	}
	to, err := time.Parse(time.RFC3339, resp.To)
	if err != nil {
		return nil, fmt.Errorf("reservation id=%d has malformed end: %w", resp.ID, err)
	}

	r := domain.Reservation{Status: domain.ReservationStatus(resp.Status)}

	return &ReservationDetails{
		ReservationResponse: *resp,
		DurationMinutes:     int(to.Sub(from) / time.Minute),
		Cancelable:          r.IsActive() && now.Before(from),
	}, nil
}
