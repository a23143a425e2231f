package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateService проверяет, что на услугу можно записаться
func validateService(service *domain.Service, branchID int64, employeeID *int64) error {
	if service.BranchID != 0 && service.BranchID != branchID {
		return ErrServiceNotFound
	}

	if service.NotActive || !service.IsReservation {
		return ErrServiceNotBookable
	}

	if service.RequireEmployee && employeeID == nil {
		return ErrEmployeeRequired
	}

	return nil
}

// validateDate проверяет дату относительно текущего бизнес-дня филиала
// today - полночь текущего бизнес-дня, обе даты сравниваются по году, месяцу и дню
func validateDate(requestDate, today time.Time, advanceBookingDays int) error {
	req := dateOnly(requestDate)
	current := dateOnly(today)

	if req.Before(current) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, requestDate.Format(domain.DateFormat))
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays <= 0 {
		return nil
	}

	if req.After(current.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
