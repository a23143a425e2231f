package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	BranchID        int64           `json:"branchId"`
	ServiceID       int64           `json:"serviceId"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота, время в часовом поясе филиала
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BranchID:        resp.BranchID,
		ServiceID:       resp.ServiceID,
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// queryParams сырые query параметры запроса
type queryParams struct {
	ServiceID         string
	Date              string
	EmployeeID        string
	IgnoreCurrentTime string
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(storeID, branchID int64, q queryParams) (*getAvailableSlots.Request, error) {
	serviceID, err := strconv.ParseInt(q.ServiceID, 10, 64)
	if err != nil {
		return nil, errInvalidServiceID
	}

	date, err := time.Parse(domain.DateFormat, q.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &getAvailableSlots.Request{
		StoreID:   storeID,
		BranchID:  branchID,
		ServiceID: serviceID,
		Date:      date,
	}

	if q.EmployeeID != "" {
		employeeID, err := strconv.ParseInt(q.EmployeeID, 10, 64)
		if err != nil {
			return nil, errInvalidEmployeeID
		}
		req.EmployeeID = &employeeID
	}

	if q.IgnoreCurrentTime != "" {
		ignore, err := strconv.ParseBool(q.IgnoreCurrentTime)
		if err != nil {
			return nil, errInvalidFlag
		}
		req.IgnoreCurrentTime = ignore
	}

	return req, nil
}
