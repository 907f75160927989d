package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

const ContentTTL = 7 * 24 * time.Hour

// ContentCache keeps translated content units in Redis, msgpack encoded.
// A nil ContentCache, or one without Redis, always misses.
type ContentCache struct {
	redis   *RedisCache
	edition string
}

func NewContentCache(redis *RedisCache, edition string) *ContentCache {
	return &ContentCache{redis: redis, edition: edition}
}

func (cc *ContentCache) key(number int) string {
	return fmt.Sprintf("content:%s:juz:%d", cc.edition, number)
}

func (cc *ContentCache) GetUnit(ctx context.Context, number int) (*models.ContentUnit, error) {
	if cc == nil || cc.redis == nil {
		return nil, nil
	}
	data, err := cc.redis.Get(ctx, cc.key(number))
	if err != nil || data == nil {
		return nil, err
	}
	return decodeUnit(data)
}

func (cc *ContentCache) PutUnit(ctx context.Context, unit *models.ContentUnit) error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	data, err := encodeUnit(unit)
	if err != nil {
		return err
	}
	return cc.redis.Set(ctx, cc.key(unit.Number), data, ContentTTL)
}

func encodeUnit(unit *models.ContentUnit) ([]byte, error) {
	return msgpack.Marshal(unit)
}

func decodeUnit(data []byte) (*models.ContentUnit, error) {
	var unit models.ContentUnit
	if err := msgpack.Unmarshal(data, &unit); err != nil {
		return nil, fmt.Errorf("decode cached unit: %w", err)
	}
	return &unit, nil
}
