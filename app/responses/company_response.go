package responses

import "github.com/company-registry/app/models"

// CheckNameResponse kết quả kiểm tra tên doanh nghiệp
type CheckNameResponse struct {
	Status           string                  `json:"status"`
	Message          string                  `json:"message"`
	Details          []models.DuplicateMatch `json:"details,omitempty"`
	ProcessingTimeMs float64                 `json:"processing_time_ms"`
	CacheHit         bool                    `json:"cache_hit"`
}

// CompanySearchResponse kết quả tìm kiếm doanh nghiệp
type CompanySearchResponse struct {
	Results          []models.RegistryEntry `json:"results"`
	Total            int                    `json:"total"`
	ProcessingTimeMs float64                `json:"processing_time_ms"`
	CacheHit         bool                   `json:"cache_hit"`
}

// SuggestNameResponse gợi ý tên theo nhóm
type SuggestNameResponse struct {
	Suggestions      models.NameSuggestions `json:"suggestions"`
	ProcessingTimeMs float64                `json:"processing_time_ms"`
}

// ErrorResponse lỗi trả về cho client
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthCheckResponse trạng thái sức khỏe service
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services,omitempty"`
}

// AdminStatsResponse thống kê vận hành cho admin
type AdminStatsResponse struct {
	IndexSize    int         `json:"index_size"`
	IndexDropped int         `json:"index_dropped"`
	Requests     interface{} `json:"requests"`
	Cache        interface{} `json:"cache"`
	Uptime       string      `json:"uptime"`
}
