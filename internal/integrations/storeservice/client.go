package storeservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// Client клиент для работы с StoreService
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        Logger
}

// Option настройка клиента
type Option func(*gobreaker.Settings)

// WithBreaker задает порог подряд идущих сбоев и время в открытом состоянии
func WithBreaker(failures uint32, openTimeout time.Duration) Option {
	return func(s *gobreaker.Settings) {
		if failures > 0 {
			s.ReadyToTrip = func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			}
		}
		if openTimeout > 0 {
			s.Timeout = openTimeout
		}
	}
}

// NewClient создает новый экземпляр клиента StoreService
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	settings := gobreaker.Settings{
		Name:        "storeservice",
		MaxRequests: 1,
		Timeout:     defaultBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultBreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("StoreService: circuit breaker %s changed state %s -> %s", name, from, to)
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     log,
	}
}

// GetBranch получает филиал с расписанием смен
func (c *Client) GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error) {
	url := fmt.Sprintf("%s/internal/stores/%d/branches/%d", c.baseURL, storeID, branchID)

	var branch Branch
	if err := c.get(ctx, url, ErrBranchNotFound, &branch); err != nil {
		return nil, err
	}

	result, skipped := branch.ToDomain()
	for _, name := range skipped {
		c.log.Warn("StoreService: branch id=%d has shifts for unknown weekday %q, skipped", branchID, name)
	}

	return result, nil
}

// GetService получает услугу филиала
func (c *Client) GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error) {
	url := fmt.Sprintf("%s/internal/branches/%d/services/%d", c.baseURL, branchID, serviceID)

	var service Service
	if err := c.get(ctx, url, ErrServiceNotFound, &service); err != nil {
		return nil, err
	}

	result, err := service.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// get выполняет запрос через circuit breaker
// Ответы 4xx не считаются сбоем StoreService, сбой это только транспорт и 5xx
func (c *Client) get(ctx context.Context, url string, notFound error, out interface{}) error {
	var businessErr error
	_, err := c.breaker.Execute(func() (interface{}, error) {
		err := c.do(ctx, url, notFound, out)
		if errors.Is(err, notFound) || errors.Is(err, errRejected) {
			businessErr = err
			return nil, nil
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return err
	}

	return businessErr
}

func (c *Client) do(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %w: invalid id format", ErrInvalidResponse, errRejected)
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	case resp.StatusCode >= http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %w: status code %d: %s", ErrInvalidResponse, errRejected, resp.StatusCode, string(body))
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
