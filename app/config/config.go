package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MatcherCfg các ngưỡng so khớp tên. Đây là tham số hành vi: đổi giá trị
// sẽ đổi kết quả trả về cho client, không chỉ đổi hiệu năng.
type MatcherCfg struct {
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"` // giữ kết quả khi score > ngưỡng (so sánh chặt)
	ContainBonus   float64 `yaml:"contain_bonus"`   // cộng thêm khi tên chứa nguyên query
	SearchLimit    int     `yaml:"search_limit"`
	DuplicateLimit int     `yaml:"duplicate_limit"`
	MinNameLength  int     `yaml:"min_name_length"`  // độ dài tối thiểu khi check tên
	MinQueryLength int     `yaml:"min_query_length"` // độ dài tối thiểu khi search
}

// SuggestCfg tham số cho bộ gợi ý tên
type SuggestCfg struct {
	SimilarCutoff float64 `yaml:"similar_cutoff"` // Jaro-Winkler >= ngưỡng thì đánh dấu too_similar
	GroupLimit    int     `yaml:"group_limit"`    // số gợi ý tối đa mỗi nhóm
}

// RegistryCfg nguồn dữ liệu đăng ký doanh nghiệp
type RegistryCfg struct {
	Source          string `yaml:"source"` // file | mongo | sample
	Path            string `yaml:"path"`
	MongoCollection string `yaml:"mongo_collection"`
}

// ServiceCfg cấu hình nghiệp vụ của service
type ServiceCfg struct {
	Matcher  MatcherCfg  `yaml:"matcher"`
	Suggest  SuggestCfg  `yaml:"suggest"`
	Registry RegistryCfg `yaml:"registry"`
}

// C cấu hình toàn cục, nạp một lần lúc khởi động
var C ServiceCfg

// Default trả về cấu hình mặc định
func Default() ServiceCfg {
	return ServiceCfg{
		Matcher: MatcherCfg{
			FuzzyThreshold: 0.45,
			ContainBonus:   0.5,
			SearchLimit:    15,
			DuplicateLimit: 10,
			MinNameLength:  3,
			MinQueryLength: 2,
		},
		Suggest: SuggestCfg{
			SimilarCutoff: 0.92,
			GroupLimit:    6,
		},
		Registry: RegistryCfg{
			Source:          "sample",
			Path:            "data/registry.json",
			MongoCollection: "companies",
		},
	}
}

// Load nạp cấu hình từ file yaml đè lên mặc định, sau đó áp env override.
// File không tồn tại thì dùng mặc định, không coi là lỗi.
func Load(path string) error {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("không thể parse file cấu hình %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("không thể đọc file cấu hình %s: %w", path, err)
	}

	if v := os.Getenv("REGISTRY_SOURCE"); v != "" {
		cfg.Registry.Source = v
	}
	if v := os.Getenv("REGISTRY_PATH"); v != "" {
		cfg.Registry.Path = v
	}

	C = cfg
	return nil
}
