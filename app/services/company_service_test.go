package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/company-registry/app/config"
	"github.com/company-registry/app/models"
	"github.com/company-registry/internal/registry"
	"github.com/company-registry/internal/suggest"
)

func testService(t *testing.T, entries []models.RegistryEntry) *CompanyService {
	t.Helper()
	config.C = config.Default()

	logger := zap.NewNop()
	idx := registry.NewIndex(entries, registry.DefaultMatcherConfig(), logger)
	generator := suggest.NewGenerator(idx, config.C.Suggest.SimilarCutoff, config.C.Suggest.GroupLimit, logger)

	cache, err := NewLRUCacheService(100)
	if err != nil {
		t.Fatalf("không khởi tạo được LRU cache: %v", err)
	}
	return NewCompanyService(idx, generator, cache, logger)
}

func sampleEntries() []models.RegistryEntry {
	return []models.RegistryEntry{
		{Name: "CÔNG TY TNHH CONTI", TaxCode: "0101234567", Address: "Hà Nội", Status: "Đang hoạt động"},
		{Name: "CÔNG TY CỔ PHẦN FPT", TaxCode: "0101248141", Address: "Hà Nội", Status: "Đang hoạt động"},
	}
}

func TestCheckNameTooShort(t *testing.T) {
	svc := testService(t, sampleEntries())

	for _, name := range []string{"", "ab", "  ab  "} {
		if _, _, err := svc.CheckName(context.Background(), name); err != ErrNameTooShort {
			t.Errorf("CheckName(%q): kỳ vọng ErrNameTooShort, được %v", name, err)
		}
	}
}

func TestCheckNameDuplicate(t *testing.T) {
	svc := testService(t, sampleEntries())

	result, cacheHit, err := svc.CheckName(context.Background(), "CÔNG TY CỔ PHẦN CONTI")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if cacheHit {
		t.Error("lần gọi đầu không thể là cache hit")
	}
	if result.Status != models.CheckStatusDuplicate {
		t.Errorf("status = %q, want %q", result.Status, models.CheckStatusDuplicate)
	}
	if len(result.Details) != 1 || result.Details[0].TaxCode != "0101234567" {
		t.Errorf("details = %+v", result.Details)
	}
}

func TestCheckNameAvailable(t *testing.T) {
	svc := testService(t, sampleEntries())

	result, _, err := svc.CheckName(context.Background(), "CÔNG TY TNHH SÔNG HỒNG")
	if err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if result.Status != models.CheckStatusAvailable {
		t.Errorf("status = %q, want %q", result.Status, models.CheckStatusAvailable)
	}
	if len(result.Details) != 0 {
		t.Errorf("kết quả khả dụng không được có details: %+v", result.Details)
	}
}

func TestCheckNameCacheHit(t *testing.T) {
	svc := testService(t, sampleEntries())
	ctx := context.Background()

	first, cacheHit, err := svc.CheckName(ctx, "CÔNG TY TNHH CONTI")
	if err != nil || cacheHit {
		t.Fatalf("lần đầu: err=%v, cacheHit=%v", err, cacheHit)
	}

	// biến thể hoa thường và pháp lý của cùng một tên phải trúng cache
	second, cacheHit, err := svc.CheckName(ctx, "công ty cổ phần conti")
	if err != nil {
		t.Fatalf("lần hai: %v", err)
	}
	if !cacheHit {
		t.Error("lần gọi thứ hai phải là cache hit")
	}
	if second.Status != first.Status {
		t.Errorf("kết quả cache khác kết quả gốc: %q != %q", second.Status, first.Status)
	}
}

func TestSearchCompaniesShortQuery(t *testing.T) {
	svc := testService(t, sampleEntries())

	entries, cacheHit := svc.SearchCompanies(context.Background(), " f ")
	if len(entries) != 0 {
		t.Errorf("query ngắn phải trả rỗng, được %d", len(entries))
	}
	if cacheHit {
		t.Error("query ngắn không đi qua cache")
	}
}

func TestSearchCompanies(t *testing.T) {
	svc := testService(t, sampleEntries())
	ctx := context.Background()

	entries, cacheHit := svc.SearchCompanies(ctx, "conti")
	if cacheHit {
		t.Error("lần gọi đầu không thể là cache hit")
	}
	if len(entries) != 1 || entries[0].TaxCode != "0101234567" {
		t.Fatalf("kết quả = %+v", entries)
	}

	entries, cacheHit = svc.SearchCompanies(ctx, "CONTI")
	if !cacheHit {
		t.Error("biến thể viết hoa phải trúng cache")
	}
	if len(entries) != 1 {
		t.Errorf("kết quả cache = %+v", entries)
	}
}

func TestStatsCounters(t *testing.T) {
	svc := testService(t, sampleEntries())
	ctx := context.Background()

	svc.CheckName(ctx, "CÔNG TY TNHH CONTI")
	svc.SearchCompanies(ctx, "conti")
	svc.SearchCompanies(ctx, "fpt")
	svc.SuggestNames("Hoa Sen")

	stats := svc.GetStats()
	if stats.CheckRequests != 1 || stats.SearchRequests != 2 || stats.SuggestRequests != 1 {
		t.Errorf("bộ đếm sai: %+v", stats)
	}
}
