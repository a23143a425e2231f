package list_blocked_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/blocked"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidPeriod   = "некорректный период, ожидается from и to в формате RFC3339"
)

type Handler struct {
	service BlockedTimeService
	logger  Logger
}

func NewHandler(service BlockedTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /internal/branches/{branchId}/blocked-times?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(mux.Vars(r)["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/blocked-times - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	query := r.URL.Query()
	from, errFrom := time.Parse(time.RFC3339, query.Get("from"))
	to, errTo := time.Parse(time.RFC3339, query.Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /branches/{id}/blocked-times - Invalid period: from=%q, to=%q", query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	list, err := h.service.List(r.Context(), branchID, from, to)
	if err != nil {
		if errors.Is(err, blocked.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /branches/{id}/blocked-times - Failed to list blocks: branch_id=%d, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{id}/blocked-times - Blocks retrieved: branch_id=%d, count=%d", branchID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
