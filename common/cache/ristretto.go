package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// GeneralCache 进程内缓存，支持 TTL，供拆牌结果复用
// 满足 mahjong.DecompositionCache
type GeneralCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// Stats 命中统计
type Stats struct {
	Hits   uint64
	Misses uint64
}

// NewGeneralCache 创建缓存
// maxCost: 最大条目数，每条成本按 1 计
// ttl: 默认过期时间，0 表示不过期
func NewGeneralCache(maxCost int64, ttl time.Duration) (*GeneralCache, error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("缓存容量必须为正数: %d", maxCost)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // 计数器取容量的 10 倍
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}

	return &GeneralCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Set 使用默认 TTL 写入；写入是异步的，返回 false 表示被丢弃
func (c *GeneralCache) Set(key string, value interface{}) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

func (c *GeneralCache) SetWithTTL(key string, value interface{}, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *GeneralCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *GeneralCache) Delete(key string) {
	c.cache.Del(key)
}

// Wait 等待缓冲区中的写入生效
func (c *GeneralCache) Wait() {
	c.cache.Wait()
}

func (c *GeneralCache) Stats() Stats {
	m := c.cache.Metrics
	if m == nil {
		return Stats{}
	}
	return Stats{Hits: m.Hits(), Misses: m.Misses()}
}

func (c *GeneralCache) Close() {
	c.cache.Close()
}
