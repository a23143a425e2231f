package get_branch_status

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса статуса филиала
type Request struct {
	StoreID   int64
	BranchID  int64
	ServiceID *int64 // если указан, дополнительно проверяется окно услуги
}

// Response модель ответа
type Response struct {
	Status             domain.BranchStatus
	Timezone           string
	IsReceivingTickets bool // филиал открыт и принимает заявки в очередь
}
