package get_branch_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getBranchStatus "github.com/m04kA/SMC-ReservationService/internal/usecase/get_branch_status"
)

const (
	msgInvalidStoreID   = "некорректный ID магазина"
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidServiceID = "некорректный ID услуги"
	msgBranchNotFound   = "филиал не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetBranchStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetBranchStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/branches/{branchId}/status
// Query params: serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/branches/{id}/status - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/branches/{id}/status - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	req := &getBranchStatus.Request{StoreID: storeID, BranchID: branchID}
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /stores/{id}/branches/{id}/status - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBranchStatus.ErrBranchNotFound):
			h.logger.Warn("GET /stores/{id}/branches/{id}/status - Branch not found: store_id=%d, branch_id=%d", storeID, branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getBranchStatus.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getBranchStatus.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /stores/{id}/branches/{id}/status - Failed to resolve status: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/branches/{id}/status - Status resolved: branch_id=%d, status=%s", branchID, result.Status.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
