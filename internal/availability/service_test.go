package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func mondayQuery() SlotQuery {
	return SlotQuery{
		Date:              monday,
		Timezone:          "UTC",
		AnchorOffsetHours: 3,
		DurationMinutes:   60,
		Shifts: domain.WeeklyShiftTemplate{
			domain.Monday: {{From: "09:00", To: "17:00"}},
		},
		Window: &domain.ReservationWindow{From: "09:00", To: "17:00"},
		Now:    hm(monday, 7, 45),
	}
}

func starts(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("Mon 15:04")
	}
	return out
}

func TestListAvailableSlots_FullDay(t *testing.T) {
	svc := NewService(nil)

	slots, err := svc.ListAvailableSlots(mondayQuery())
	require.NoError(t, err)

	require.Len(t, slots, 8)
	for i, s := range slots {
		assert.True(t, s.Start.Equal(hm(monday, 9+i, 0)))
		assert.Equal(t, time.Hour, s.End.Sub(s.Start))
	}
}

func TestListAvailableSlots_ReservedSlotExcluded(t *testing.T) {
	svc := NewService(nil)
	q := mondayQuery()
	q.Busy.Reserved = []domain.BusyInterval{busy(monday, 12, 0, 13, 0)}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Mon 09:00", "Mon 10:00", "Mon 11:00", "Mon 13:00", "Mon 14:00", "Mon 15:00", "Mon 16:00",
	}, starts(slots))
}

func TestListAvailableSlots_OvernightShift(t *testing.T) {
	svc := NewService(nil)
	q := SlotQuery{
		Date:              friday,
		Timezone:          "UTC",
		AnchorOffsetHours: 3,
		DurationMinutes:   60,
		Shifts: domain.WeeklyShiftTemplate{
			domain.Friday: {{From: "22:00", To: "02:00"}},
		},
		Now: hm(friday, 23, 0),
	}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fri 23:00", "Sat 00:00", "Sat 01:00"}, starts(slots))

	q.IgnoreCurrentTime = true
	slots, err = svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fri 22:00", "Fri 23:00", "Sat 00:00", "Sat 01:00"}, starts(slots))
}

func TestListAvailableSlots_NextDayEarlyShiftBelongsToBusinessDay(t *testing.T) {
	svc := NewService(nil)
	q := SlotQuery{
		Date:              friday,
		AnchorOffsetHours: 3,
		Timezone:          "UTC",
		DurationMinutes:   60,
		Shifts: domain.WeeklyShiftTemplate{
			domain.Friday:   {{From: "20:00", To: "23:00"}},
			domain.Saturday: {{From: "00:00", To: "02:00"}, {From: "10:00", To: "12:00"}},
		},
		Now: friday.AddDate(0, 0, -1),
	}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fri 20:00", "Fri 21:00", "Fri 22:00", "Sat 00:00", "Sat 01:00"}, starts(slots))
}

func TestListAvailableSlots_OvernightReservationWindow(t *testing.T) {
	svc := NewService(nil)
	q := SlotQuery{
		Date:              friday,
		Timezone:          "UTC",
		AnchorOffsetHours: 3,
		DurationMinutes:   60,
		Shifts: domain.WeeklyShiftTemplate{
			domain.Friday: {{From: "18:00", To: "03:00"}},
		},
		Window: &domain.ReservationWindow{From: "23:00", To: "01:00"},
		Now:    friday.AddDate(0, 0, -1),
	}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fri 23:00", "Sat 00:00"}, starts(slots))
}

func TestListAvailableSlots_EmployeeOnlyWhenRequired(t *testing.T) {
	svc := NewService(nil)
	q := mondayQuery()
	q.Busy.Employee = []domain.BusyInterval{busy(monday, 14, 0, 15, 0)}

	q.RequireEmployee = true
	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Len(t, slots, 7)
	assert.NotContains(t, starts(slots), "Mon 14:00")

	q.RequireEmployee = false
	slots, err = svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Len(t, slots, 8)
	assert.Contains(t, starts(slots), "Mon 14:00")
}

func TestListAvailableSlots_BlockedAndMalformedBusy(t *testing.T) {
	svc := NewService(nil)
	q := mondayQuery()
	q.Busy.Blocked = []domain.BusyInterval{
		busy(monday, 9, 30, 10, 15),
		{From: nil, To: nil},
	}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Mon 11:00", "Mon 12:00", "Mon 13:00", "Mon 14:00", "Mon 15:00", "Mon 16:00",
	}, starts(slots))
}

func TestListAvailableSlots_MalformedEntriesAreReported(t *testing.T) {
	log := &recordingLogger{}
	svc := NewService(log)
	q := mondayQuery()
	q.Shifts = domain.WeeklyShiftTemplate{
		domain.Monday: {{From: "nine", To: "17:00"}, {From: "13:00", To: "15:00"}},
	}
	q.Window = &domain.ReservationWindow{From: "09:00", To: "99:99"}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mon 13:00", "Mon 14:00"}, starts(slots))
	assert.Len(t, log.warnings, 2)
}

func TestListAvailableSlots_Timezone(t *testing.T) {
	svc := NewService(nil)
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	q := mondayQuery()
	q.Timezone = "Asia/Riyadh"
	q.Now = time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC) // 09:30 in Riyadh

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)

	require.Len(t, slots, 7)
	assert.True(t, slots[0].Start.Equal(time.Date(2025, 3, 10, 10, 0, 0, 0, riyadh)))
	assert.True(t, slots[0].Start.Equal(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Asia/Riyadh", slots[0].Start.Location().String())
}

func TestListAvailableSlots_Errors(t *testing.T) {
	svc := NewService(nil)

	q := mondayQuery()
	q.Timezone = "Nowhere/Special"
	_, err := svc.ListAvailableSlots(q)
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	q = mondayQuery()
	q.DurationMinutes = 0
	_, err = svc.ListAvailableSlots(q)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	q = mondayQuery()
	q.AnchorOffsetHours = 24
	_, err = svc.ListAvailableSlots(q)
	assert.ErrorIs(t, err, ErrInvalidAnchor)
}

func TestListAvailableSlots_Idempotent(t *testing.T) {
	svc := NewService(nil)
	q := mondayQuery()
	q.DurationMinutes = 45
	q.Busy.Reserved = []domain.BusyInterval{busy(monday, 11, 0, 11, 30)}

	first, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)
	second, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListAvailableSlots_OverlappingShiftsSortedAndUnique(t *testing.T) {
	svc := NewService(nil)
	q := mondayQuery()
	q.Window = nil
	q.Shifts = domain.WeeklyShiftTemplate{
		domain.Monday: {{From: "13:00", To: "16:00"}, {From: "09:00", To: "14:00"}, {From: "09:00", To: "14:00"}},
	}

	slots, err := svc.ListAvailableSlots(q)
	require.NoError(t, err)

	require.Len(t, slots, 7)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestToSortedSlots_Dedupe(t *testing.T) {
	in := []domain.Interval{
		span(monday, 11, 0, 12, 0),
		span(monday, 9, 0, 10, 0),
		span(monday, 11, 0, 12, 0),
		span(monday, 9, 0, 9, 30),
	}

	slots := toSortedSlots(in)

	require.Len(t, slots, 3)
	assert.Equal(t, hm(monday, 9, 30), slots[0].End)
	assert.Equal(t, hm(monday, 10, 0), slots[1].End)
	assert.Equal(t, hm(monday, 11, 0), slots[2].Start)
}

func TestIsIntervalAvailable(t *testing.T) {
	svc := NewService(nil)
	candidate := span(monday, 14, 0, 15, 0)

	t.Run("touching reservation", func(t *testing.T) {
		sets := domain.BusySets{Reserved: []domain.BusyInterval{busy(monday, 13, 30, 14, 0)}}
		assert.True(t, svc.IsIntervalAvailable(candidate, sets, false))
	})

	t.Run("overlapping block", func(t *testing.T) {
		sets := domain.BusySets{Blocked: []domain.BusyInterval{busy(monday, 14, 30, 16, 0)}}
		assert.False(t, svc.IsIntervalAvailable(candidate, sets, false))
	})

	t.Run("employee busy", func(t *testing.T) {
		sets := domain.BusySets{Employee: []domain.BusyInterval{busy(monday, 13, 0, 14, 30)}}
		assert.False(t, svc.IsIntervalAvailable(candidate, sets, true))
		assert.True(t, svc.IsIntervalAvailable(candidate, sets, false))
	})

	t.Run("outside shifts is not checked", func(t *testing.T) {
		night := span(monday, 3, 0, 4, 0)
		assert.True(t, svc.IsIntervalAvailable(night, domain.BusySets{}, false))
	})
}
