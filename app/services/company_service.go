package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/company-registry/app/config"
	"github.com/company-registry/app/models"
	"github.com/company-registry/internal/normalizer"
	"github.com/company-registry/internal/registry"
	"github.com/company-registry/internal/suggest"
)

// ErrNameTooShort tên kiểm tra quá ngắn, lỗi validate phía client
var ErrNameTooShort = errors.New("tên công ty phải có ít nhất 3 ký tự")

// Thông điệp trả về cho người dùng cuối
const (
	msgDuplicate = "Tên doanh nghiệp đã tồn tại trong cơ sở dữ liệu. Vui lòng chọn tên khác."
	msgAvailable = "Chúc mừng! Tên doanh nghiệp này hiện đang khả dụng và sẵn sàng đăng ký."
)

// ServiceStats bộ đếm nghiệp vụ của service
type ServiceStats struct {
	CheckRequests   int64 `json:"check_requests"`
	SearchRequests  int64 `json:"search_requests"`
	SuggestRequests int64 `json:"suggest_requests"`
}

// CompanyService nghiệp vụ kiểm tra và tìm kiếm tên doanh nghiệp
type CompanyService struct {
	index     *registry.Index
	generator *suggest.Generator
	cache     ICacheService
	logger    *zap.Logger
	startTime time.Time

	mu    sync.Mutex
	stats ServiceStats
}

// NewCompanyService tạo mới CompanyService
func NewCompanyService(index *registry.Index, generator *suggest.Generator, cache ICacheService, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		index:     index,
		generator: generator,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}
}

// CheckName kiểm tra tên doanh nghiệp có trùng trong registry không.
// Trả về kết quả, cờ cache hit và lỗi validate nếu tên quá ngắn.
func (s *CompanyService) CheckName(ctx context.Context, name string) (*models.NameCheckResult, bool, error) {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < config.C.Matcher.MinNameLength {
		return nil, false, ErrNameTooShort
	}

	s.mu.Lock()
	s.stats.CheckRequests++
	s.mu.Unlock()

	normalized := normalizer.NormalizeBusinessName(trimmed)
	cacheKey := "check:" + normalized

	if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok && cached.Check != nil {
		return cached.Check, true, nil
	}

	matches := s.index.CheckDuplicate(trimmed)

	result := &models.NameCheckResult{}
	if len(matches) > 0 {
		result.Status = models.CheckStatusDuplicate
		result.Message = msgDuplicate
		result.Details = matches
	} else {
		result.Status = models.CheckStatusAvailable
		result.Message = msgAvailable
	}

	if err := s.cache.Set(ctx, cacheKey, &models.LookupResult{Check: result}); err != nil {
		s.logger.Warn("Không thể ghi cache kết quả check", zap.Error(err))
	}

	return result, false, nil
}

// SearchCompanies tìm kiếm mờ theo tên. Query quá ngắn trả về danh sách rỗng,
// không phải lỗi.
func (s *CompanyService) SearchCompanies(ctx context.Context, query string) ([]models.RegistryEntry, bool) {
	s.mu.Lock()
	s.stats.SearchRequests++
	s.mu.Unlock()

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < config.C.Matcher.MinQueryLength {
		return []models.RegistryEntry{}, false
	}

	cacheKey := "search:" + normalizer.NormalizeBusinessName(trimmed)
	if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok && cached.Entries != nil {
		return cached.Entries, true
	}

	entries := s.index.Search(trimmed)

	if err := s.cache.Set(ctx, cacheKey, &models.LookupResult{Entries: entries}); err != nil {
		s.logger.Warn("Không thể ghi cache kết quả search", zap.Error(err))
	}

	return entries, false
}

// SuggestNames sinh gợi ý tên theo từ khóa
func (s *CompanyService) SuggestNames(keyword string) models.NameSuggestions {
	s.mu.Lock()
	s.stats.SuggestRequests++
	s.mu.Unlock()

	return s.generator.Generate(keyword)
}

// GetStats trả bộ đếm nghiệp vụ hiện tại
func (s *CompanyService) GetStats() ServiceStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// GetCacheStats trả thống kê cache
func (s *CompanyService) GetCacheStats(ctx context.Context) (*CacheStats, error) {
	return s.cache.GetStats(ctx)
}

// InvalidateCache xóa toàn bộ cache kết quả
func (s *CompanyService) InvalidateCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// IndexSize số bản ghi trong chỉ mục
func (s *CompanyService) IndexSize() int {
	return s.index.Size()
}

// IndexDropped số bản ghi bị loại lúc chuẩn bị chỉ mục
func (s *CompanyService) IndexDropped() int {
	return s.index.DroppedCount()
}

// GetStartTime thời điểm service khởi động
func (s *CompanyService) GetStartTime() time.Time {
	return s.startTime
}
