package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storeClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	service *domain.Service
	err     error
}

func (f *fakeStore) GetService(context.Context, int64, int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeLoader struct {
	sets domain.BusySets
	err  error
}

func (f *fakeLoader) Load(context.Context, domain.BusyPeriodFilter) (domain.BusySets, error) {
	return f.sets, f.err
}

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestExecute(t *testing.T) {
	loader := &fakeLoader{sets: domain.BusySets{
		Reserved: []domain.BusyInterval{domain.NewBusyInterval(at(13, 30), at(14, 0))},
		Employee: []domain.BusyInterval{domain.NewBusyInterval(at(15, 0), at(16, 0))},
	}}
	store := &fakeStore{service: &domain.Service{ID: 3, BranchID: 7}}
	uc := NewUseCase(store, loader, availability.NewService(nil), nopLogger{})

	tests := []struct {
		name            string
		from, to        time.Time
		requireEmployee bool
		want            bool
	}{
		{name: "touching reservation", from: at(14, 0), to: at(15, 0), want: true},
		{name: "overlapping reservation", from: at(13, 45), to: at(14, 45), want: false},
		{name: "employee busy is ignored", from: at(15, 0), to: at(15, 30), want: true},
		{name: "employee busy when required", from: at(15, 0), to: at(15, 30), requireEmployee: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.service.RequireEmployee = tt.requireEmployee
			req := &Request{BranchID: 7, ServiceID: 3, From: tt.from, To: tt.to}
			if tt.requireEmployee {
				req.EmployeeID = ptr.Ptr(int64(12))
			}

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Available)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	valid := func() *Request { return &Request{BranchID: 7, ServiceID: 3, From: at(10, 0), To: at(11, 0)} }

	t.Run("inverted interval", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{}, &fakeLoader{}, availability.NewService(nil), nopLogger{})
		req := valid()
		req.From, req.To = req.To, req.From
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("too long", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{}, &fakeLoader{}, availability.NewService(nil), nopLogger{})
		req := valid()
		req.To = req.From.Add(25 * time.Hour)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("service not found", func(t *testing.T) {
		uc := NewUseCase(&fakeStore{err: storeClient.ErrServiceNotFound}, &fakeLoader{}, availability.NewService(nil), nopLogger{})
		_, err := uc.Execute(context.Background(), valid())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("service of another branch", func(t *testing.T) {
		loader := &fakeLoader{err: errors.New("must not be called")}
		store := &fakeStore{service: &domain.Service{ID: 3, BranchID: 8}}
		uc := NewUseCase(store, loader, availability.NewService(nil), nopLogger{})
		_, err := uc.Execute(context.Background(), valid())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("employee required", func(t *testing.T) {
		store := &fakeStore{service: &domain.Service{RequireEmployee: true}}
		uc := NewUseCase(store, &fakeLoader{}, availability.NewService(nil), nopLogger{})
		_, err := uc.Execute(context.Background(), valid())
		assert.ErrorIs(t, err, ErrEmployeeRequired)
	})

	t.Run("loader failure", func(t *testing.T) {
		store := &fakeStore{service: &domain.Service{}}
		uc := NewUseCase(store, &fakeLoader{err: errors.New("timeout")}, availability.NewService(nil), nopLogger{})
		_, err := uc.Execute(context.Background(), valid())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
