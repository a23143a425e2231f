package check_availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в филиале
	ErrServiceNotFound = errors.New("check_availability: service not found")

	// ErrEmployeeRequired возвращается, когда услуга требует сотрудника, а он не указан
	ErrEmployeeRequired = errors.New("check_availability: employee is required for this service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
