package services

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/company-registry/app/models"
)

// LRUCacheService cache trong bộ nhớ process, tầng L1.
// Không bao giờ trả lỗi ngoài lúc khởi tạo.
type LRUCacheService struct {
	cache  *lru.Cache[string, *models.LookupResult]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewLRUCacheService tạo mới LRUCacheService với sức chứa cho trước
func NewLRUCacheService(size int) (*LRUCacheService, error) {
	cache, err := lru.New[string, *models.LookupResult](size)
	if err != nil {
		return nil, err
	}
	return &LRUCacheService{cache: cache}, nil
}

func (s *LRUCacheService) Get(_ context.Context, key string) (*models.LookupResult, bool, error) {
	result, ok := s.cache.Get(key)
	if !ok {
		s.misses.Add(1)
		return nil, false, nil
	}
	s.hits.Add(1)
	return result, true, nil
}

func (s *LRUCacheService) Set(_ context.Context, key string, result *models.LookupResult) error {
	s.cache.Add(key, result)
	return nil
}

func (s *LRUCacheService) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

func (s *LRUCacheService) Clear(_ context.Context) error {
	s.cache.Purge()
	return nil
}

func (s *LRUCacheService) GetStats(_ context.Context) (*CacheStats, error) {
	hits := s.hits.Load()
	misses := s.misses.Load()
	total := hits + misses

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(s.cache.Len()),
	}
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

func (s *LRUCacheService) Close() error {
	return nil
}
