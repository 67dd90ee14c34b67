// Package suggest sinh gợi ý tên doanh nghiệp theo nhóm phong cách và đánh
// giá từng gợi ý so với registry hiện có.
package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/company-registry/app/models"
	"github.com/company-registry/internal/matching"
	"github.com/company-registry/internal/normalizer"
	"github.com/company-registry/internal/registry"
)

// hậu tố theo nhóm phong cách thương hiệu
var (
	modernSuffixes     = []string{"Global", "Solutions", "System", "Network", "Labs", "Logic"}
	corporateSuffixes  = []string{"Group", "Holdings", "Corporation", "Venture", "Capital", "Corp"}
	vietnameseSuffixes = []string{"VN", "Thương Mại", "Đầu Tư", "Việt Nam"}
)

// Generator sinh và đánh giá gợi ý tên
type Generator struct {
	index  *registry.Index
	cutoff float64 // ngưỡng Jaro-Winkler để đánh dấu too_similar
	limit  int     // số gợi ý tối đa mỗi nhóm
	logger *zap.Logger
}

// NewGenerator tạo mới Generator
func NewGenerator(index *registry.Index, cutoff float64, limit int, logger *zap.Logger) *Generator {
	return &Generator{
		index:  index,
		cutoff: cutoff,
		limit:  limit,
		logger: logger,
	}
}

// Generate sinh gợi ý tên từ một từ khóa, nhóm theo phong cách.
// Từ khóa dưới 2 ký tự trả về các nhóm rỗng. Kết quả sắp xếp ổn định
// theo bảng chữ cái trong từng nhóm.
func (g *Generator) Generate(keyword string) models.NameSuggestions {
	trimmed := strings.TrimSpace(keyword)
	if utf8.RuneCountInString(trimmed) < 2 {
		return models.NameSuggestions{
			Modern:     []models.NameSuggestion{},
			Corporate:  []models.NameSuggestion{},
			Vietnamese: []models.NameSuggestion{},
		}
	}

	base := strings.ToUpper(normalizer.FoldDiacritics(trimmed))
	initials := initialsOf(trimmed)

	return models.NameSuggestions{
		Modern:     g.buildGroup(base, initials, modernSuffixes),
		Corporate:  g.buildGroup(base, initials, corporateSuffixes),
		Vietnamese: g.buildGroup(base, initials, vietnameseSuffixes),
	}
}

// buildGroup ghép từ khóa với các hậu tố của nhóm, khử trùng lặp,
// sắp xếp và đánh giá từng tên
func (g *Generator) buildGroup(base, initials string, suffixes []string) []models.NameSuggestion {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, suffix := range suffixes {
		add(base + " " + suffix)
		if initials != "" && initials != base {
			add(initials + " " + suffix)
		}
	}

	sort.Strings(names)
	if len(names) > g.limit {
		names = names[:g.limit]
	}

	suggestions := make([]models.NameSuggestion, 0, len(names))
	for _, name := range names {
		suggestions = append(suggestions, g.assess(name))
	}
	return suggestions
}

// assess đối chiếu một gợi ý với registry: available khi không có bản ghi
// trùng tên chuẩn hóa, too_similar khi có bản ghi lân cận với Jaro-Winkler
// vượt ngưỡng
func (g *Generator) assess(name string) models.NameSuggestion {
	normalized := normalizer.NormalizeBusinessName(name)

	available := len(g.index.CheckDuplicate(name)) == 0

	tooSimilar := false
	for _, entry := range g.index.Search(name) {
		other := normalizer.NormalizeBusinessName(entry.Name)
		if other == normalized {
			continue
		}
		if matching.JaroWinkler(normalized, other) >= g.cutoff {
			tooSimilar = true
			break
		}
	}

	return models.NameSuggestion{
		Name:       name,
		Available:  available,
		TooSimilar: tooSimilar,
	}
}

// initialsOf ghép chữ cái đầu (đã bỏ dấu) của từng từ trong từ khóa.
// Từ khóa một từ thì không có dạng viết tắt.
func initialsOf(keyword string) string {
	words := strings.Fields(normalizer.FoldDiacritics(keyword))
	if len(words) < 2 {
		return ""
	}
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}
