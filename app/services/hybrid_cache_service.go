package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/company-registry/app/models"
)

// HybridCacheService ghép LRU (L1) với Redis (L2): đọc L1 trước,
// miss thì xuống L2 và đồng bộ ngược lên L1. Lỗi L2 chỉ log warning,
// không lan ra caller vì mọi kết quả đều tính lại được từ chỉ mục.
type HybridCacheService struct {
	l1     *LRUCacheService
	l2     *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService tạo mới HybridCacheService
func NewHybridCacheService(l1 *LRUCacheService, l2 *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{l1: l1, l2: l2, logger: logger}
}

func (s *HybridCacheService) Get(ctx context.Context, key string) (*models.LookupResult, bool, error) {
	if result, ok, _ := s.l1.Get(ctx, key); ok {
		return result, true, nil
	}

	result, ok, err := s.l2.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Lỗi đọc cache L2, bỏ qua", zap.Error(err))
		return nil, false, nil
	}
	if !ok {
		return nil, false, nil
	}

	// đồng bộ ngược lên L1 ngoài đường nóng
	go func() {
		syncCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.l1.Set(syncCtx, key, result)
	}()

	return result, true, nil
}

func (s *HybridCacheService) Set(ctx context.Context, key string, result *models.LookupResult) error {
	if err := s.l1.Set(ctx, key, result); err != nil {
		return err
	}
	if err := s.l2.Set(ctx, key, result); err != nil {
		s.logger.Warn("Lỗi ghi cache L2, bỏ qua", zap.Error(err))
	}
	return nil
}

func (s *HybridCacheService) Delete(ctx context.Context, key string) error {
	if err := s.l1.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.l2.Delete(ctx, key); err != nil {
		s.logger.Warn("Lỗi xóa key cache L2", zap.Error(err))
	}
	return nil
}

func (s *HybridCacheService) Clear(ctx context.Context) error {
	if err := s.l1.Clear(ctx); err != nil {
		return err
	}
	if err := s.l2.Clear(ctx); err != nil {
		s.logger.Warn("Lỗi xóa cache L2", zap.Error(err))
	}
	return nil
}

// GetStats trả thống kê của L1 kèm số item L2 cộng dồn
func (s *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	stats, err := s.l1.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if l2Stats, err := s.l2.GetStats(ctx); err == nil {
		stats.TotalItems += l2Stats.TotalItems
	}
	return stats, nil
}

func (s *HybridCacheService) Close() error {
	_ = s.l1.Close()
	return s.l2.Close()
}
