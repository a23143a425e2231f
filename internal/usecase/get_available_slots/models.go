package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	StoreID           int64     // ID магазина
	BranchID          int64     // ID филиала
	ServiceID         int64     // ID услуги
	EmployeeID        *int64    // ID сотрудника (обязателен, если услуга требует сотрудника)
	Date              time.Time // Дата бизнес-дня, используются только год, месяц и день
	IgnoreCurrentTime bool      // Не отбрасывать уже начавшиеся слоты (для администратора)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Запрошенная дата
	BranchID        int64     // ID филиала
	ServiceID       int64     // ID услуги
	Timezone        string    // Часовой пояс филиала
	DurationMinutes int       // Длительность слота
	Slots           []Slot    // Список доступных слотов по возрастанию начала
}

// Slot модель временного слота в часовом поясе филиала
type Slot struct {
	Start time.Time
	End   time.Time
}
