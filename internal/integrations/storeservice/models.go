package storeservice

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Branch модель филиала из StoreService
type Branch struct {
	ID                     int64                     `json:"id"`
	StoreID                int64                     `json:"store_id"`
	Name                   string                    `json:"name"`
	WorkingShiftsTimezone  string                    `json:"working_shifts_timezone"`
	BusinessDayAnchorHours *int                      `json:"business_day_anchor_hours,omitempty"`
	WorkingShifts          map[string][]WorkingShift `json:"working_shifts"` // ключ - имя дня недели ("Monday")
	IsNotReceivingTickets  bool                      `json:"is_not_receiving_tickets"`
}

// WorkingShift диапазон рабочего времени "HH:MM"-"HH:MM"
type WorkingShift struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Service модель услуги из StoreService
type Service struct {
	ID                 int64         `json:"id"`
	BranchID           int64         `json:"branch_id"`
	Name               string        `json:"name"`
	IsReservation      bool          `json:"is_reservation"`
	Duration           string        `json:"duration"` // "HH:MM"
	ReservationTime    *WorkingShift `json:"reservation_time,omitempty"`
	RequireEmployee    bool          `json:"require_employee"`
	AdvanceBookingDays int           `json:"advance_booking_days"`
	NotActive          bool          `json:"not_active"`
}

// ErrorResponse модель ошибки от StoreService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует филиал в доменную модель
// Ключи working_shifts с неизвестным днем недели пропускаются и возвращаются в skipped
func (b *Branch) ToDomain() (branch *domain.Branch, skipped []string) {
	template := make(domain.WeeklyShiftTemplate, len(b.WorkingShifts))
	for name, shifts := range b.WorkingShifts {
		day, err := domain.ParseWeekday(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		ranges := make([]domain.ShiftRange, 0, len(shifts))
		for _, s := range shifts {
			ranges = append(ranges, domain.ShiftRange{From: types.TimeString(s.From), To: types.TimeString(s.To)})
		}
		template[day] = append(template[day], ranges...)
	}

	return &domain.Branch{
		ID:                     b.ID,
		StoreID:                b.StoreID,
		Name:                   b.Name,
		Timezone:               b.WorkingShiftsTimezone,
		BusinessDayAnchorHours: b.BusinessDayAnchorHours,
		WorkingShifts:          template,
		IsNotReceivingTickets:  b.IsNotReceivingTickets,
	}, skipped
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() (*domain.Service, error) {
	duration, err := types.TimeString(s.Duration).Minutes()
	if err != nil {
		return nil, fmt.Errorf("service id=%d: bad duration %q: %w", s.ID, s.Duration, err)
	}

	service := &domain.Service{
		ID:                 s.ID,
		BranchID:           s.BranchID,
		Name:               s.Name,
		IsReservation:      s.IsReservation,
		DurationMinutes:    duration,
		RequireEmployee:    s.RequireEmployee,
		AdvanceBookingDays: s.AdvanceBookingDays,
		NotActive:          s.NotActive,
	}

	if s.ReservationTime != nil {
		service.ReservationTime = &domain.ReservationWindow{
			From: types.TimeString(s.ReservationTime.From),
			To:   types.TimeString(s.ReservationTime.To),
		}
	}

	return service, nil
}
