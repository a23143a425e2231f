package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func hm(day time.Time, h, m int) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location())
}

func span(day time.Time, fromH, fromM, toH, toM int) domain.Interval {
	return domain.Interval{Start: hm(day, fromH, fromM), End: hm(day, toH, toM)}
}

func busy(day time.Time, fromH, fromM, toH, toM int) domain.BusyInterval {
	return domain.NewBusyInterval(hm(day, fromH, fromM), hm(day, toH, toM))
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Interval
		want bool
	}{
		{
			name: "back to back after",
			a:    span(monday, 10, 0, 11, 0),
			b:    span(monday, 11, 0, 12, 0),
			want: false,
		},
		{
			name: "back to back before",
			a:    span(monday, 11, 0, 12, 0),
			b:    span(monday, 10, 0, 11, 0),
			want: false,
		},
		{
			name: "nested",
			a:    span(monday, 10, 0, 11, 0),
			b:    span(monday, 10, 30, 10, 45),
			want: true,
		},
		{
			name: "partial overlap",
			a:    span(monday, 11, 30, 12, 0),
			b:    span(monday, 11, 20, 11, 40),
			want: true,
		},
		{
			name: "identical",
			a:    span(monday, 9, 0, 10, 0),
			b:    span(monday, 9, 0, 10, 0),
			want: true,
		},
		{
			name: "disjoint",
			a:    span(monday, 9, 0, 10, 0),
			b:    span(monday, 14, 0, 15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conflicts(tt.a, tt.b))
		})
	}
}

func TestConflicts_Symmetric(t *testing.T) {
	var intervals []domain.Interval
	for start := 0; start < 8; start++ {
		for length := 1; length <= 4; length++ {
			from := monday.Add(time.Duration(start) * 30 * time.Minute)
			intervals = append(intervals, domain.Interval{
				Start: from,
				End:   from.Add(time.Duration(length) * 30 * time.Minute),
			})
		}
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, Conflicts(a, b), Conflicts(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestContains_ClosedBounds(t *testing.T) {
	shift := span(monday, 9, 0, 17, 0)

	assert.True(t, Contains(shift, span(monday, 16, 0, 17, 0)), "slot ending at close")
	assert.True(t, Contains(shift, span(monday, 9, 0, 10, 0)), "slot starting at open")
	assert.False(t, Contains(shift, span(monday, 16, 30, 17, 30)))
	assert.False(t, Contains(shift, span(monday, 8, 30, 9, 30)))

	assert.True(t, ContainsInstant(shift, hm(monday, 17, 0)))
	assert.False(t, ContainsInstant(shift, hm(monday, 17, 1)))
}

func TestConflictsWithBusy_NullBounds(t *testing.T) {
	candidate := span(monday, 10, 0, 11, 0)
	at := hm(monday, 10, 30)

	assert.False(t, ConflictsWithBusy(candidate, domain.BusyInterval{}))
	assert.False(t, ConflictsWithBusy(candidate, domain.BusyInterval{From: &at}))
	assert.False(t, ConflictsWithBusy(candidate, domain.BusyInterval{To: &at}))
	assert.True(t, ConflictsWithBusy(candidate, busy(monday, 10, 15, 10, 45)))
}

func TestConflictsWithBusy_InvertedBoundsIgnored(t *testing.T) {
	candidate := span(monday, 9, 0, 12, 0)
	inverted := domain.NewBusyInterval(hm(monday, 11, 0), hm(monday, 10, 0))

	assert.False(t, ConflictsWithBusy(candidate, inverted))
}
