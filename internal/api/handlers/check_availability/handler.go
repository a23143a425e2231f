package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidBody      = "некорректное тело запроса"
	msgServiceNotFound  = "услуга не найдена"
	msgEmployeeRequired = "для этой услуги необходимо указать сотрудника"
	msgInvalidInterval  = "некорректный интервал"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/branches/{branchId}/availability-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(mux.Vars(r)["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /branches/{id}/availability-check - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /branches/{id}/availability-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(branchID))
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrServiceNotFound):
			h.logger.Warn("POST /branches/{id}/availability-check - Service not found: branch_id=%d, service_id=%d",
				branchID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, checkAvailability.ErrEmployeeRequired):
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /branches/{id}/availability-check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /branches/{id}/availability-check - Failed to check interval: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /branches/{id}/availability-check - Checked: branch_id=%d, service_id=%d, available=%t",
		branchID, req.ServiceID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
