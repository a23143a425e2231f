package storeservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestClient_GetBranch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/stores/1/branches/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 7,
			"store_id": 1,
			"name": "Center",
			"working_shifts_timezone": "Europe/Moscow",
			"business_day_anchor_hours": 4,
			"working_shifts": {
				"Monday": [{"from": "09:00", "to": "18:00"}],
				"Friday": [{"from": "22:00", "to": "02:00"}],
				"Funday": [{"from": "00:00", "to": "01:00"}]
			}
		}`))
	})

	branch, err := client.GetBranch(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), branch.ID)
	assert.Equal(t, "Europe/Moscow", branch.Timezone)
	assert.Equal(t, 4, branch.AnchorOrDefault(3))
	require.Len(t, branch.WorkingShifts, 2)
	assert.Equal(t, []domain.ShiftRange{{From: "22:00", To: "02:00"}}, branch.WorkingShifts.For(domain.Friday))
}

func TestClient_GetService(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/branches/7/services/3", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 3,
			"branch_id": 7,
			"is_reservation": true,
			"duration": "01:30",
			"reservation_time": {"from": "10:00", "to": "20:00"},
			"require_employee": true,
			"advance_booking_days": 14
		}`))
	})

	service, err := client.GetService(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, 90, service.DurationMinutes)
	assert.True(t, service.RequireEmployee)
	require.NotNil(t, service.ReservationTime)
	assert.Equal(t, "10:00", service.ReservationTime.From.String())
	assert.Equal(t, 14, service.AdvanceBookingDays)
}

func TestClient_Errors(t *testing.T) {
	t.Run("branch not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetBranch(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrBranchNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetService(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := client.GetBranch(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("bad duration", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 3, "duration": "ninety"}`))
		})
		_, err := client.GetService(context.Background(), 1, 3)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})
		_, err := client.GetBranch(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("bad request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})
		_, err := client.GetBranch(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.NotErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_BreakerOpensAfterFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{}, WithBreaker(2, time.Minute))

	for i := 0; i < 2; i++ {
		_, err := client.GetBranch(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrUnavailable)
	}

	_, err := client.GetBranch(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{}, WithBreaker(1, time.Minute))

	for i := 0; i < 3; i++ {
		_, err := client.GetService(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "unprocessable entity", status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, nopLogger{}, WithBreaker(2, time.Minute))

			for i := 0; i < 4; i++ {
				_, err := client.GetBranch(context.Background(), 1, 2)
				assert.ErrorIs(t, err, ErrInvalidResponse)
				assert.NotErrorIs(t, err, ErrUnavailable)
			}
			assert.Equal(t, 4, calls)
		})
	}
}
