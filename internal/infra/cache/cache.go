package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

const (
	recordKeyPrefix = "calculations:"
	listKey         = "calculations:all"
)

// Cache - кеш записей расчетов поверх Redis.
// nil клиент полностью отключает кеширование: чтения промахиваются,
// записи и инвалидация ничего не делают. Ошибки Redis никогда не
// всплывают наружу - кеш не должен ломать основной путь.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// New создает кеш с заданным TTL. client может быть nil.
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Enabled сообщает, подключен ли Redis
func (c *Cache) Enabled() bool {
	return c.redis != nil && c.ttl > 0
}

// GetCalculation читает запись из кеша
func (c *Cache) GetCalculation(ctx context.Context, id int64) (*domain.Calculation, bool) {
	var calc domain.Calculation
	if !c.read(ctx, recordKey(id), &calc) {
		return nil, false
	}
	return &calc, true
}

// SetCalculation кладет запись в кеш
func (c *Cache) SetCalculation(ctx context.Context, calc *domain.Calculation) {
	c.write(ctx, recordKey(calc.ID), calc)
}

// GetCalculations читает полный список из кеша
func (c *Cache) GetCalculations(ctx context.Context) ([]domain.Calculation, bool) {
	calcs := make([]domain.Calculation, 0)
	if !c.read(ctx, listKey, &calcs) {
		return nil, false
	}
	return calcs, true
}

// SetCalculations кладет полный список в кеш
func (c *Cache) SetCalculations(ctx context.Context, calcs []domain.Calculation) {
	c.write(ctx, listKey, calcs)
}

// Invalidate сбрасывает запись и список после любой мутации
func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if !c.Enabled() {
		return
	}
	_ = c.redis.Del(ctx, recordKey(id), listKey).Err()
}

func (c *Cache) read(ctx context.Context, key string, out interface{}) bool {
	if !c.Enabled() {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Cache) write(ctx context.Context, key string, val interface{}) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}

func recordKey(id int64) string {
	return fmt.Sprintf("%s%d", recordKeyPrefix, id)
}
