package storeservice

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в филиале
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("storeservice client: internal error")

	// ErrUnavailable возвращается, когда StoreService недоступен (сеть, 5xx) или circuit breaker разомкнут
	ErrUnavailable = errors.New("storeservice client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("storeservice client: invalid response")

	// errRejected помечает ответы 4xx, они не учитываются circuit breaker
	errRejected = errors.New("request rejected")
)
