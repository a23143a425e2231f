package cache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Cache key-value хранилище с TTL
type Cache interface {
	// Get возвращает значение и false, если ключа нет
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix удаляет все ключи, начинающиеся с prefix
	DeletePrefix(ctx context.Context, prefix string) error
}

// StoreClient источник настроек филиалов и услуг
type StoreClient interface {
	GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error)
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
