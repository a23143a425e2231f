package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err      error
	canceled []int64
}

func (f *fakeService) Cancel(_ context.Context, id int64, _ int64) error {
	if f.err != nil {
		return f.err
	}
	f.canceled = append(f.canceled, id)
	return nil
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/cancel", h.Handle)
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id+"/cancel", nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), 42))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandle_Canceled(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "5")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{5}, svc.canceled)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&fakeService{}, nopLogger{}), "x").Code)

	tests := []struct {
		err  error
		want int
	}{
		{err: reservations.ErrReservationNotFound, want: http.StatusNotFound},
		{err: reservations.ErrAccessDenied, want: http.StatusForbidden},
		{err: reservations.ErrCannotCancel, want: http.StatusBadRequest},
		{err: reservations.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), "5")
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
