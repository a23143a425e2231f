package create_reservation

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("create_reservation: branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в филиале
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrServiceNotBookable возвращается, когда услуга неактивна или без предварительной записи
	ErrServiceNotBookable = errors.New("create_reservation: service is not available for reservation")

	// ErrEmployeeRequired возвращается, когда услуга требует сотрудника, а он не указан
	ErrEmployeeRequired = errors.New("create_reservation: employee is required for this service")

	// ErrInvalidDate возвращается, когда слот уже начался
	ErrInvalidDate = errors.New("create_reservation: slot is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда начало не совпадает ни с одним слотом расписания
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятым
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
