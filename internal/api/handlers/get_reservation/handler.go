package get_reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgNotFound             = "резервация не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "нет доступа к чужой резервации"
)

type Handler struct {
	service ReservationService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
// Отдает резервацию владельцу вместе с длительностью и признаком cancelable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID %q", mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID, userID)
	switch {
	case err == nil:
	case errors.Is(err, reservations.ErrReservationNotFound):
		handlers.RespondNotFound(w, msgNotFound)
		return
	case errors.Is(err, reservations.ErrAccessDenied):
		h.logger.Warn("GET /reservations/{id} - Foreign reservation: reservation_id=%d, user_id=%d", reservationID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	default:
		h.logger.Error("GET /reservations/{id} - reservation_id=%d: %v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	details, err := FromServiceResponse(reservation, h.now())
	if err != nil {
		h.logger.Error("GET /reservations/{id} - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, details)
}
