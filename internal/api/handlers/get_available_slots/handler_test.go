package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/stores/{storeId}/branches/{branchId}/available-slots", h.Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, riyadh)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		BranchID:        2,
		ServiceID:       3,
		Timezone:        "Asia/Riyadh",
		DurationMinutes: 60,
		Slots:           []getAvailableSlots.Slot{{Start: start, End: start.Add(time.Hour)}},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/stores/1/branches/2/available-slots?serviceId=3&date=2025-03-10&employeeId=9&ignoreCurrentTime=true")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.StoreID)
	assert.Equal(t, int64(3), uc.got.ServiceID)
	require.NotNil(t, uc.got.EmployeeID)
	assert.Equal(t, int64(9), *uc.got.EmployeeID)
	assert.True(t, uc.got.IgnoreCurrentTime)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, "Asia/Riyadh", body.Timezone)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2025-03-10T10:00:00+03:00", body.Slots[0].Start)
	assert.Equal(t, "2025-03-10T11:00:00+03:00", body.Slots[0].End)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	targets := []string{
		"/api/v1/stores/x/branches/2/available-slots?serviceId=3&date=2025-03-10",
		"/api/v1/stores/1/branches/x/available-slots?serviceId=3&date=2025-03-10",
		"/api/v1/stores/1/branches/2/available-slots?date=2025-03-10",
		"/api/v1/stores/1/branches/2/available-slots?serviceId=3",
		"/api/v1/stores/1/branches/2/available-slots?serviceId=3&date=10.03.2025",
		"/api/v1/stores/1/branches/2/available-slots?serviceId=3&date=2025-03-10&employeeId=abc",
		"/api/v1/stores/1/branches/2/available-slots?serviceId=3&date=2025-03-10&ignoreCurrentTime=maybe",
	}

	for _, target := range targets {
		rec := serve(h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: getAvailableSlots.ErrBranchNotFound, want: http.StatusNotFound},
		{err: getAvailableSlots.ErrServiceNotFound, want: http.StatusNotFound},
		{err: getAvailableSlots.ErrServiceNotBookable, want: http.StatusBadRequest},
		{err: getAvailableSlots.ErrEmployeeRequired, want: http.StatusBadRequest},
		{err: getAvailableSlots.ErrInvalidDate, want: http.StatusBadRequest},
		{err: getAvailableSlots.ErrDateTooFarInFuture, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: breaker open", getAvailableSlots.ErrStoreUnavailable), want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("%w: boom", getAvailableSlots.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := serve(h, "/api/v1/stores/1/branches/2/available-slots?serviceId=3&date=2025-03-10")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
