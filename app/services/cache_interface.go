package services

import (
	"context"

	"github.com/company-registry/app/models"
)

// CacheStats thống kê hoạt động của cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService interface chung cho các tầng cache kết quả tra cứu.
// Key là tên/query đã chuẩn hóa nên các biến thể viết hoa, có dấu
// của cùng một tên dùng chung một entry.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.LookupResult, bool, error)
	Set(ctx context.Context, key string, result *models.LookupResult) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (*CacheStats, error)
	Close() error
}
