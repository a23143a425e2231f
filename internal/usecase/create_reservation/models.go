package create_reservation

import "time"

// Request модель запроса на создание резервации
type Request struct {
	UserID     int64     // ID пользователя из X-User-ID
	StoreID    int64     // ID магазина
	BranchID   int64     // ID филиала
	ServiceID  int64     // ID услуги
	EmployeeID *int64    // ID сотрудника (опционально)
	Start      time.Time // Начало слота
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID         int64
	UserID     int64
	StoreID    int64
	BranchID   int64
	ServiceID  int64
	EmployeeID *int64
	From       time.Time
	To         time.Time
	Status     string
	Notes      *string
	CreatedAt  time.Time
}
