package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CachedStoreClient read-through кэш настроек филиалов и услуг
// Ошибки кэша не ломают запрос: логируем и идем в источник
type CachedStoreClient struct {
	next  StoreClient
	cache Cache
	ttl   time.Duration
	log   Logger
}

// NewCachedStoreClient оборачивает клиент StoreService кэшем
func NewCachedStoreClient(next StoreClient, cache Cache, ttl time.Duration, log Logger) *CachedStoreClient {
	return &CachedStoreClient{next: next, cache: cache, ttl: ttl, log: log}
}

func branchKey(storeID, branchID int64) string {
	return fmt.Sprintf("reservation:branch:%d:%d", storeID, branchID)
}

func serviceKey(branchID, serviceID int64) string {
	return serviceKeyPrefix(branchID) + strconv.FormatInt(serviceID, 10)
}

func serviceKeyPrefix(branchID int64) string {
	return fmt.Sprintf("reservation:service:%d:", branchID)
}

// GetBranch возвращает филиал из кэша или из StoreService
func (c *CachedStoreClient) GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error) {
	key := branchKey(storeID, branchID)

	var branch domain.Branch
	if c.load(ctx, key, &branch) {
		return &branch, nil
	}

	result, err := c.next.GetBranch(ctx, storeID, branchID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, result)
	return result, nil
}

// GetService возвращает услугу из кэша или из StoreService
func (c *CachedStoreClient) GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error) {
	key := serviceKey(branchID, serviceID)

	var service domain.Service
	if c.load(ctx, key, &service) {
		return &service, nil
	}

	result, err := c.next.GetService(ctx, branchID, serviceID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, result)
	return result, nil
}

// InvalidateBranch сбрасывает закэшированный филиал вместе с его услугами
func (c *CachedStoreClient) InvalidateBranch(ctx context.Context, storeID, branchID int64) error {
	if err := c.cache.Delete(ctx, branchKey(storeID, branchID)); err != nil {
		return err
	}
	return c.cache.DeletePrefix(ctx, serviceKeyPrefix(branchID))
}

func (c *CachedStoreClient) load(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache: get %s failed: %v", key, err)
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("cache: corrupted value for %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedStoreClient) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache: marshal %s failed: %v", key, err)
		return
	}

	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache: set %s failed: %v", key, err)
	}
}
