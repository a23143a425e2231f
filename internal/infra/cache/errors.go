package cache

import "errors"

var (
	// ErrCacheGet возвращается при ошибке чтения из кэша
	ErrCacheGet = errors.New("cache: failed to get")

	// ErrCacheSet возвращается при ошибке записи в кэш
	ErrCacheSet = errors.New("cache: failed to set")

	// ErrCacheDelete возвращается при ошибке удаления из кэша
	ErrCacheDelete = errors.New("cache: failed to delete")

	// ErrConnect возвращается, когда redis недоступен при старте
	ErrConnect = errors.New("cache: failed to connect to redis")
)
