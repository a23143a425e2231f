package invalidate_branch_cache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCache struct {
	invalidated [][2]int64
	err         error
}

func (f *fakeCache) InvalidateBranch(_ context.Context, storeID, branchID int64) error {
	f.invalidated = append(f.invalidated, [2]int64{storeID, branchID})
	return f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/internal/stores/{storeId}/branches/{branchId}/cache", h.Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	cache := &fakeCache{}

	rec := serve(NewHandler(cache, nopLogger{}), "/internal/stores/1/branches/2/cache")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, [][2]int64{{1, 2}}, cache.invalidated)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&fakeCache{}, nopLogger{}), "/internal/stores/x/branches/2/cache").Code)

	rec := serve(NewHandler(&fakeCache{err: errors.New("redis down")}, nopLogger{}), "/internal/stores/1/branches/2/cache")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
