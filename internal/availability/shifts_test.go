package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var friday = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestResolveShifts_CurrentAndNextDay(t *testing.T) {
	template := domain.WeeklyShiftTemplate{
		domain.Friday:   {{From: "22:00", To: "02:00"}, {From: "09:00", To: "13:00"}},
		domain.Saturday: {{From: "00:00", To: "01:30"}},
		domain.Sunday:   {{From: "10:00", To: "18:00"}},
	}

	shifts, skipped := ResolveShifts(template, friday.Add(15*time.Hour))
	require.Empty(t, skipped)
	require.Len(t, shifts, 3)

	saturday := friday.AddDate(0, 0, 1)
	assert.Equal(t, domain.Interval{Start: hm(friday, 22, 0), End: hm(saturday, 2, 0)}, shifts[0])
	assert.Equal(t, span(friday, 9, 0, 13, 0), shifts[1])
	assert.Equal(t, span(saturday, 0, 0, 1, 30), shifts[2])
}

func TestResolveShifts_EqualBoundsIsFullDay(t *testing.T) {
	template := domain.WeeklyShiftTemplate{
		domain.Monday: {{From: "00:00", To: "00:00"}},
	}

	shifts, skipped := ResolveShifts(template, monday)
	require.Empty(t, skipped)
	require.Len(t, shifts, 1)
	assert.Equal(t, 24*time.Hour, shifts[0].Duration())
}

func TestResolveShifts_SkipsMalformedRange(t *testing.T) {
	template := domain.WeeklyShiftTemplate{
		domain.Monday: {{From: "9am", To: "17:00"}, {From: "13:00", To: "15:00"}},
	}

	shifts, skipped := ResolveShifts(template, monday)

	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0], ErrMalformedTimeOfDay)
	assert.Contains(t, skipped[0].Error(), "Monday shift #0")
	require.Len(t, shifts, 1)
	assert.Equal(t, span(monday, 13, 0, 15, 0), shifts[0])
}

func TestResolveShifts_ClosedDay(t *testing.T) {
	shifts, skipped := ResolveShifts(domain.WeeklyShiftTemplate{}, monday)
	assert.Empty(t, shifts)
	assert.Empty(t, skipped)
}

func TestResolveWindow(t *testing.T) {
	windows, err := ResolveWindow(nil, monday)
	require.NoError(t, err)
	assert.Nil(t, windows)

	windows, err = ResolveWindow(&domain.ReservationWindow{From: "20:00", To: "01:00"}, monday)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, domain.Interval{Start: hm(monday, 20, 0), End: hm(tuesday, 1, 0)}, windows[0])

	_, err = ResolveWindow(&domain.ReservationWindow{From: "20:00", To: "25:00"}, monday)
	assert.ErrorIs(t, err, ErrMalformedTimeOfDay)
}

func TestBusinessDayBounds(t *testing.T) {
	bounds := BusinessDayBounds(friday.Add(20*time.Hour), 3)

	assert.Equal(t, hm(friday, 3, 0), bounds.Start)
	assert.Equal(t, hm(friday.AddDate(0, 0, 1), 3, 0), bounds.End)
}

func TestBusinessDate(t *testing.T) {
	saturday := friday.AddDate(0, 0, 1)

	assert.Equal(t, friday, BusinessDate(hm(saturday, 1, 30), 3))
	assert.Equal(t, saturday, BusinessDate(hm(saturday, 3, 0), 3))
	assert.Equal(t, saturday, BusinessDate(hm(saturday, 1, 30), 0))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	now, err := Now(time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC), "Asia/Riyadh")
	require.NoError(t, err)
	assert.Equal(t, 23, now.Hour())
}
