package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, branch, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/branches/{branchId}/availability-check", h.Handle)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/"+branch+"/availability-check", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"serviceId":3,"employeeId":9,"from":"2025-03-10T12:00:00+03:00","to":"2025-03-10T13:00:00+03:00"}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{Available: true}}

	rec := serve(NewHandler(uc, nopLogger{}), "5", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(5), uc.got.BranchID)
	assert.Equal(t, int64(3), uc.got.ServiceID)
	require.NotNil(t, uc.got.EmployeeID)
	assert.True(t, uc.got.From.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	var body CheckAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, serve(h, "abc", validBody).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "5", `{"serviceId":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "5", `{"serviceId":3,"from":"tomorrow"}`).Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: checkAvailability.ErrServiceNotFound, want: http.StatusNotFound},
		{err: checkAvailability.ErrEmployeeRequired, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: to before from", checkAvailability.ErrInvalidInput), want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: db down", checkAvailability.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), "5", validBody)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
