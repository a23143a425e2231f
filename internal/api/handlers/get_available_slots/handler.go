package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStoreID      = "некорректный ID магазина"
	msgInvalidBranchID     = "некорректный ID филиала"
	msgInvalidServiceID    = "некорректный ID услуги"
	msgInvalidEmployeeID   = "некорректный ID сотрудника"
	msgInvalidFlag         = "некорректное значение ignoreCurrentTime"
	msgMissingServiceID    = "ID услуги обязателен"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate            = "дата в прошлом"
	msgDateTooFar          = "дата слишком далеко в будущем"
	msgBranchNotFound      = "филиал не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotBookable  = "услуга недоступна для предварительной записи"
	msgEmployeeRequired    = "для этой услуги необходимо указать сотрудника"
	msgStoreServiceOffline = "сервис филиалов временно недоступен"
)

var (
	errInvalidServiceID  = errors.New(msgInvalidServiceID)
	errInvalidEmployeeID = errors.New(msgInvalidEmployeeID)
	errInvalidDate       = errors.New(msgInvalidDate)
	errInvalidFlag       = errors.New(msgInvalidFlag)
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/branches/{branchId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), employeeId, ignoreCurrentTime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	query := r.URL.Query()
	params := queryParams{
		ServiceID:         query.Get("serviceId"),
		Date:              query.Get("date"),
		EmployeeID:        query.Get("employeeId"),
		IgnoreCurrentTime: query.Get("ignoreCurrentTime"),
	}

	if params.ServiceID == "" {
		h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	if params.Date == "" {
		h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(storeID, branchID, params)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Branch not found: store_id=%d, branch_id=%d", storeID, branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stores/{id}/branches/{id}/available-slots - Service not found: branch_id=%d, service_id=%d",
				branchID, useCaseReq.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotBookable):
			handlers.RespondBadRequest(w, msgServiceNotBookable)

		case errors.Is(err, getAvailableSlots.ErrEmployeeRequired):
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /stores/{id}/branches/{id}/available-slots - Store service unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreServiceOffline)

		default:
			h.logger.Error("GET /stores/{id}/branches/{id}/available-slots - Failed to get slots: branch_id=%d, service_id=%d, error=%v",
				branchID, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/branches/{id}/available-slots - Slots retrieved successfully: branch_id=%d, service_id=%d, slots_count=%d",
		branchID, useCaseReq.ServiceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
