// Package registry dựng và truy vấn chỉ mục tên doanh nghiệp trong bộ nhớ.
// Chỉ mục bất biến sau khi dựng nên mọi phép đọc đều an toàn khi chạy song song.
package registry

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/company-registry/app/models"
	"github.com/company-registry/internal/matching"
	"github.com/company-registry/internal/normalizer"
)

// MatcherConfig tham số so khớp của chỉ mục
type MatcherConfig struct {
	FuzzyThreshold float64
	ContainBonus   float64
	SearchLimit    int
	DuplicateLimit int
	MinQueryLength int
}

// DefaultMatcherConfig trả về tham số mặc định
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		FuzzyThreshold: 0.45,
		ContainBonus:   0.5,
		SearchLimit:    15,
		DuplicateLimit: 10,
		MinQueryLength: 2,
	}
}

// Index chỉ mục so khớp tên doanh nghiệp, dựng một lần lúc khởi động
type Index struct {
	records []models.PreparedRecord
	cfg     MatcherConfig
	logger  *zap.Logger
	dropped int
}

// NewIndex chuẩn bị từng bản ghi thô: chọn tên hiển thị, chuẩn hóa tên,
// loại bản ghi không dùng được. Giữ nguyên thứ tự dữ liệu đầu vào.
func NewIndex(entries []models.RegistryEntry, cfg MatcherConfig, logger *zap.Logger) *Index {
	idx := &Index{
		records: make([]models.PreparedRecord, 0, len(entries)),
		cfg:     cfg,
		logger:  logger,
	}

	for _, e := range entries {
		display, ok := deriveDisplayName(e)
		if !ok {
			idx.dropped++
			continue
		}
		normalized := normalizer.NormalizeBusinessName(display)
		if normalized == "" {
			idx.dropped++
			continue
		}
		e.Name = display
		idx.records = append(idx.records, models.PreparedRecord{
			Entry:          e,
			DisplayName:    display,
			NormalizedName: normalized,
		})
	}

	logger.Info("Đã dựng chỉ mục doanh nghiệp",
		zap.Int("records", len(idx.records)),
		zap.Int("dropped", idx.dropped))

	return idx
}

// Size số bản ghi trong chỉ mục
func (idx *Index) Size() int {
	return len(idx.records)
}

// DroppedCount số bản ghi bị loại lúc chuẩn bị
func (idx *Index) DroppedCount() int {
	return idx.dropped
}

// CheckDuplicate tìm các bản ghi trùng tên chuẩn hóa với tên ứng viên.
// Trả về tối đa DuplicateLimit kết quả theo thứ tự chỉ mục.
func (idx *Index) CheckDuplicate(candidateName string) []models.DuplicateMatch {
	normalized := normalizer.NormalizeBusinessName(candidateName)

	var matches []models.DuplicateMatch
	for i := range idx.records {
		r := &idx.records[i]
		if r.NormalizedName != normalized {
			continue
		}
		matches = append(matches, models.DuplicateMatch{
			Name:    r.DisplayName,
			TaxCode: r.Entry.BestTaxCode(),
			Address: r.Entry.Address,
			Status:  r.Entry.Status,
		})
		if len(matches) >= idx.cfg.DuplicateLimit {
			break
		}
	}
	return matches
}

type searchCandidate struct {
	record   *models.PreparedRecord
	score    float64
	contains bool
}

// Search tìm kiếm mờ theo tên chuẩn hóa: điểm = độ tương đồng Levenshtein,
// cộng ContainBonus nếu tên chứa nguyên query. Giữ kết quả khi chứa query
// hoặc điểm vượt chặt ngưỡng FuzzyThreshold, xếp giảm dần theo điểm,
// cắt còn SearchLimit.
func (idx *Index) Search(query string) []models.RegistryEntry {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < idx.cfg.MinQueryLength {
		return []models.RegistryEntry{}
	}

	normalized := normalizer.NormalizeBusinessName(trimmed)

	var candidates []searchCandidate
	for i := range idx.records {
		r := &idx.records[i]
		contains := strings.Contains(r.NormalizedName, normalized)
		score := matching.Similarity(normalized, r.NormalizedName)
		if contains {
			score += idx.cfg.ContainBonus
		}
		if !contains && score <= idx.cfg.FuzzyThreshold {
			continue
		}
		candidates = append(candidates, searchCandidate{record: r, score: score, contains: contains})
	}

	// sort ổn định để kết quả đồng điểm giữ thứ tự chỉ mục
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > idx.cfg.SearchLimit {
		candidates = candidates[:idx.cfg.SearchLimit]
	}

	results := make([]models.RegistryEntry, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.record.Entry)
	}
	return results
}

// deriveDisplayName chọn tên hiển thị cho bản ghi thô. Tên gốc dùng được
// nếu có ít nhất 3 ký tự và không toàn chữ số; nếu không thì thử từng dòng
// địa chỉ theo cùng tiêu chí (trên 3 ký tự). Không chọn được thì loại.
func deriveDisplayName(e models.RegistryEntry) (string, bool) {
	name := strings.TrimSpace(e.Name)
	if utf8.RuneCountInString(name) >= 3 && !allDigits(name) {
		return name, true
	}
	for _, line := range strings.Split(e.Address, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= 3 {
			continue
		}
		if allDigits(line) {
			continue
		}
		return line, true
	}
	return "", false
}

// allDigits chuỗi không rỗng và chỉ gồm chữ số
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
