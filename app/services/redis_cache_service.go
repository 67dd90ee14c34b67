package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/company-registry/app/models"
)

const (
	redisKeyPrefix = "company_registry:"
	redisTTL       = 24 * time.Hour
)

// RedisCacheService cache chia sẻ giữa các instance, tầng L2
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCacheService kết nối Redis và kiểm tra bằng PING.
// Kết nối fail thì trả lỗi để caller quyết định fallback.
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis URL không hợp lệ: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("không thể kết nối Redis: %w", err)
	}

	logger.Info("Đã kết nối Redis cache", zap.String("addr", opts.Addr))
	return &RedisCacheService{client: client, logger: logger}, nil
}

func (s *RedisCacheService) Get(ctx context.Context, key string) (*models.LookupResult, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lỗi đọc Redis: %w", err)
	}

	var result models.LookupResult
	if err := json.Unmarshal(data, &result); err != nil {
		// entry hỏng: xóa để lần sau tính lại
		s.client.Del(ctx, redisKeyPrefix+key)
		return nil, false, nil
	}
	return &result, true, nil
}

func (s *RedisCacheService) Set(ctx context.Context, key string, result *models.LookupResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("không thể serialize kết quả: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, redisTTL).Err(); err != nil {
		return fmt.Errorf("lỗi ghi Redis: %w", err)
	}
	return nil
}

func (s *RedisCacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisCacheService) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("lỗi xóa key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (s *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	var count int64
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("lỗi đếm key Redis: %w", err)
	}
	// Redis không tách hit/miss theo prefix nên chỉ báo số item
	return &CacheStats{TotalItems: count}, nil
}

func (s *RedisCacheService) Close() error {
	return s.client.Close()
}
