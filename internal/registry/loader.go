package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/company-registry/app/models"
)

//go:embed data/sample_registry.json
var sampleRegistryJSON []byte

// LoadFromFile đọc dataset đăng ký doanh nghiệp từ file JSON
func LoadFromFile(path string, logger *zap.Logger) ([]models.RegistryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("không thể đọc dataset %s: %w", path, err)
	}

	var entries []models.RegistryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("không thể parse dataset %s: %w", path, err)
	}

	logger.Info("Đã nạp dataset từ file",
		zap.String("path", path),
		zap.Int("entries", len(entries)))
	return entries, nil
}

// LoadEmbeddedSample trả về dataset mẫu nhúng sẵn trong binary,
// dùng cho môi trường dev và test
func LoadEmbeddedSample(logger *zap.Logger) ([]models.RegistryEntry, error) {
	var entries []models.RegistryEntry
	if err := json.Unmarshal(sampleRegistryJSON, &entries); err != nil {
		return nil, fmt.Errorf("dataset mẫu nhúng bị hỏng: %w", err)
	}

	logger.Info("Đã nạp dataset mẫu nhúng", zap.Int("entries", len(entries)))
	return entries, nil
}
