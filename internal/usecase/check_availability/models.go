package check_availability

import "time"

// Request модель запроса на проверку интервала
type Request struct {
	BranchID   int64     // ID филиала
	ServiceID  int64     // ID услуги
	EmployeeID *int64    // ID сотрудника (опционально)
	From       time.Time // Начало интервала
	To         time.Time // Конец интервала
}

// Response модель ответа
type Response struct {
	Available bool
}
