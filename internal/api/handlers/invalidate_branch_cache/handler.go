package invalidate_branch_cache

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidStoreID  = "некорректный ID магазина"
	msgInvalidBranchID = "некорректный ID филиала"
)

type Handler struct {
	cache  BranchCache
	logger Logger
}

func NewHandler(cache BranchCache, logger Logger) *Handler {
	return &Handler{
		cache:  cache,
		logger: logger,
	}
}

// Handle DELETE /internal/stores/{storeId}/branches/{branchId}/cache
// Вызывается сервисом магазинов после изменения расписания филиала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	if err := h.cache.InvalidateBranch(r.Context(), storeID, branchID); err != nil {
		h.logger.Error("DELETE /stores/{id}/branches/{id}/cache - Failed to invalidate: branch_id=%d, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /stores/{id}/branches/{id}/cache - Invalidated: store_id=%d, branch_id=%d", storeID, branchID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
