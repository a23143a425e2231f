package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

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

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
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

// validateAdvance проверяет ограничение записи заранее
// businessDate - бизнес-день слота, today - текущий бизнес-день филиала
func validateAdvance(businessDate, today time.Time, advanceBookingDays int) error {
	if advanceBookingDays <= 0 {
		return nil
	}

	if businessDate.After(today.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// findSlot ищет слот расписания, начинающийся в start
func findSlot(slots []domain.Slot, start time.Time) (domain.Slot, bool) {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return s, true
		}
	}
	return domain.Slot{}, false
}
