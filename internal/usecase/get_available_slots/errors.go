package get_available_slots

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в филиале
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable возвращается, когда услуга неактивна или без предварительной записи
	ErrServiceNotBookable = errors.New("service is not available for reservation")

	// ErrEmployeeRequired возвращается, когда услуга требует сотрудника, а он не указан
	ErrEmployeeRequired = errors.New("employee is required for this service")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается, когда сервис филиалов недоступен или размыкатель открыт
	ErrStoreUnavailable = errors.New("store service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
