package models

// RegistryEntry bản ghi thô từ dataset đăng ký doanh nghiệp.
// Dữ liệu crawl không sạch: name có thể rỗng hoặc chỉ là mã số,
// address có thể nhiều dòng.
type RegistryEntry struct {
	Name       string   `json:"name" bson:"name"`
	TaxCode    string   `json:"msdn,omitempty" bson:"msdn,omitempty"` // mã số doanh nghiệp
	InternalID string   `json:"msnb,omitempty" bson:"msnb,omitempty"` // mã số nội bộ
	Address    string   `json:"address,omitempty" bson:"address,omitempty"`
	Status     string   `json:"status,omitempty" bson:"status,omitempty"`
	Industries []string `json:"industries,omitempty" bson:"industries,omitempty"`
}

// BestTaxCode chọn mã số tốt nhất hiện có của bản ghi
func (e *RegistryEntry) BestTaxCode() string {
	if e.TaxCode != "" {
		return e.TaxCode
	}
	return e.InternalID
}

// PreparedRecord bản ghi đã chuẩn bị cho so khớp, bất biến sau khi dựng chỉ mục
type PreparedRecord struct {
	Entry          RegistryEntry `json:"entry"`
	DisplayName    string        `json:"display_name"`
	NormalizedName string        `json:"normalized_name"`
}

// DuplicateMatch bản ghi trùng tên, kèm các trường hiển thị cho người dùng
type DuplicateMatch struct {
	Name    string `json:"name"`
	TaxCode string `json:"tax_code"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// Trạng thái kết quả kiểm tra tên
const (
	CheckStatusAvailable = "available"
	CheckStatusDuplicate = "duplicate"
)

// NameCheckResult kết quả kiểm tra tên doanh nghiệp
type NameCheckResult struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Details []DuplicateMatch `json:"details,omitempty"`
}

// LookupResult giá trị cache chung cho hai phép tra cứu read-only
type LookupResult struct {
	Check   *NameCheckResult `json:"check,omitempty"`
	Entries []RegistryEntry  `json:"entries,omitempty"`
}

// NameSuggestion một gợi ý tên kèm đánh giá so với registry
type NameSuggestion struct {
	Name       string `json:"name"`
	Available  bool   `json:"available"`
	TooSimilar bool   `json:"too_similar"`
}

// NameSuggestions gợi ý tên nhóm theo phong cách thương hiệu
type NameSuggestions struct {
	Modern     []NameSuggestion `json:"modern"`
	Corporate  []NameSuggestion `json:"corporate"`
	Vietnamese []NameSuggestion `json:"vietnamese"`
}
