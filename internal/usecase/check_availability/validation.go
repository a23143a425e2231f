package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	if req.To.Sub(req.From) > domain.MaxReservationLengthMinutes*time.Minute {
		return fmt.Errorf("%w: interval is longer than %d minutes", ErrInvalidInput, domain.MaxReservationLengthMinutes)
	}

	return nil
}

// validateService проверяет, что услуга принадлежит филиалу запроса
func validateService(service *domain.Service, branchID int64, employeeID *int64) error {
	if service.BranchID != 0 && service.BranchID != branchID {
		return ErrServiceNotFound
	}

	if service.RequireEmployee && employeeID == nil {
		return ErrEmployeeRequired
	}

	return nil
}
