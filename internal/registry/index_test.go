package registry

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/company-registry/app/models"
)

func testIndex(t *testing.T, entries []models.RegistryEntry) *Index {
	t.Helper()
	return NewIndex(entries, DefaultMatcherConfig(), zap.NewNop())
}

func sampleEntries() []models.RegistryEntry {
	return []models.RegistryEntry{
		{Name: "CÔNG TY TNHH CONTI", TaxCode: "0101234567", Address: "Số 1 Đại Cồ Việt, Hà Nội", Status: "Đang hoạt động"},
		{Name: "CÔNG TY CỔ PHẦN TẬP ĐOÀN VINGROUP", TaxCode: "0101245486", Address: "Long Biên, Hà Nội", Status: "Đang hoạt động"},
		{Name: "CÔNG TY TNHH THƯƠNG MẠI DỊCH VỤ ABC", TaxCode: "0312345678", Address: "Quận 1, TP. Hồ Chí Minh", Status: "Đang hoạt động"},
	}
}

func TestNewIndexDisplayNameDerivation(t *testing.T) {
	tests := []struct {
		name        string
		entry       models.RegistryEntry
		wantKept    bool
		wantDisplay string
	}{
		{
			name:        "tên gốc dùng được",
			entry:       models.RegistryEntry{Name: "CÔNG TY TNHH CONTI"},
			wantKept:    true,
			wantDisplay: "CÔNG TY TNHH CONTI",
		},
		{
			name:        "tên toàn chữ số, lấy dòng địa chỉ đầu",
			entry:       models.RegistryEntry{Name: "0101234567", Address: "CÔNG TY TNHH AN BÌNH\nSố 5 Lý Thường Kiệt"},
			wantKept:    true,
			wantDisplay: "CÔNG TY TNHH AN BÌNH",
		},
		{
			name:        "dòng địa chỉ đầu toàn số, lấy dòng sau",
			entry:       models.RegistryEntry{Name: "ab", Address: "12345\nCÔNG TY TNHH HOA SEN"},
			wantKept:    true,
			wantDisplay: "CÔNG TY TNHH HOA SEN",
		},
		{
			name:     "không có gì dùng được",
			entry:    models.RegistryEntry{Name: "99", Address: "123\n45"},
			wantKept: false,
		},
		{
			name:     "tên chỉ gồm từ khóa pháp lý",
			entry:    models.RegistryEntry{Name: "CÔNG TY TNHH"},
			wantKept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := testIndex(t, []models.RegistryEntry{tt.entry})
			if tt.wantKept {
				if idx.Size() != 1 {
					t.Fatalf("kỳ vọng giữ bản ghi, index size = %d", idx.Size())
				}
				if got := idx.records[0].DisplayName; got != tt.wantDisplay {
					t.Errorf("display name = %q, want %q", got, tt.wantDisplay)
				}
			} else {
				if idx.Size() != 0 {
					t.Fatalf("kỳ vọng loại bản ghi, index size = %d", idx.Size())
				}
				if idx.DroppedCount() != 1 {
					t.Errorf("dropped = %d, want 1", idx.DroppedCount())
				}
			}
		})
	}
}

func TestCheckDuplicate(t *testing.T) {
	idx := testIndex(t, sampleEntries())

	t.Run("trùng qua biến thể pháp lý", func(t *testing.T) {
		matches := idx.CheckDuplicate("CÔNG TY CỔ PHẦN CONTI")
		if len(matches) != 1 {
			t.Fatalf("kỳ vọng 1 kết quả, được %d", len(matches))
		}
		if matches[0].Name != "CÔNG TY TNHH CONTI" {
			t.Errorf("tên = %q", matches[0].Name)
		}
		if matches[0].TaxCode != "0101234567" {
			t.Errorf("mã số = %q", matches[0].TaxCode)
		}
	})

	t.Run("không trùng", func(t *testing.T) {
		if matches := idx.CheckDuplicate("XYZ UNKNOWN ENTERPRISE"); len(matches) != 0 {
			t.Errorf("kỳ vọng rỗng, được %d kết quả", len(matches))
		}
	})

	t.Run("fallback mã số nội bộ", func(t *testing.T) {
		idx := testIndex(t, []models.RegistryEntry{
			{Name: "CÔNG TY TNHH NAM HẢI", InternalID: "NB-001"},
		})
		matches := idx.CheckDuplicate("nam hai")
		if len(matches) != 1 || matches[0].TaxCode != "NB-001" {
			t.Fatalf("kỳ vọng mã nội bộ NB-001, được %+v", matches)
		}
	})
}

func TestCheckDuplicateLimit(t *testing.T) {
	var entries []models.RegistryEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, models.RegistryEntry{
			Name:    "CÔNG TY TNHH TRÙNG TÊN",
			TaxCode: fmt.Sprintf("%010d", i),
		})
	}
	idx := testIndex(t, entries)

	matches := idx.CheckDuplicate("TRÙNG TÊN")
	if len(matches) != 10 {
		t.Fatalf("kỳ vọng cắt còn 10 kết quả, được %d", len(matches))
	}
	// giữ thứ tự chỉ mục
	if matches[0].TaxCode != "0000000000" || matches[9].TaxCode != "0000000009" {
		t.Errorf("thứ tự sai: đầu %q, cuối %q", matches[0].TaxCode, matches[9].TaxCode)
	}
}

func TestSearch(t *testing.T) {
	idx := testIndex(t, sampleEntries())

	t.Run("query ngắn trả rỗng", func(t *testing.T) {
		if got := idx.Search("a"); len(got) != 0 {
			t.Errorf("kỳ vọng rỗng, được %d", len(got))
		}
		if got := idx.Search("  a  "); len(got) != 0 {
			t.Errorf("kỳ vọng rỗng sau trim, được %d", len(got))
		}
	})

	t.Run("khớp chứa chuỗi", func(t *testing.T) {
		got := idx.Search("conti")
		if len(got) == 0 {
			t.Fatal("kỳ vọng tìm thấy CONTI")
		}
		if !strings.Contains(got[0].Name, "CONTI") {
			t.Errorf("kết quả đầu = %q", got[0].Name)
		}
	})

	t.Run("không khớp gì", func(t *testing.T) {
		if got := idx.Search("zzzzzzzzzzzz"); len(got) != 0 {
			t.Errorf("kỳ vọng rỗng, được %d", len(got))
		}
	})
}

func TestSearchContainmentOutranksSimilarity(t *testing.T) {
	idx := testIndex(t, []models.RegistryEntry{
		// gần giống query nhưng không chứa
		{Name: "vingrop", TaxCode: "1"},
		// chứa nguyên query
		{Name: "vingroup land", TaxCode: "2"},
	})

	got := idx.Search("vingroup")
	if len(got) != 2 {
		t.Fatalf("kỳ vọng 2 kết quả, được %d", len(got))
	}
	if got[0].TaxCode != "2" {
		t.Errorf("kết quả chứa query phải đứng đầu, được mã %q", got[0].TaxCode)
	}
}

func TestSearchThresholdBoundary(t *testing.T) {
	// query 20 ký tự: bản ghi cách 11 có điểm đúng bằng 0.45, phải bị loại
	// vì ngưỡng so sánh chặt; bản ghi cách 10 có điểm 0.5, được giữ
	query := strings.Repeat("a", 20)
	atThreshold := strings.Repeat("a", 9) + strings.Repeat("b", 11)     // (20-11)/20 = 0.45
	aboveThreshold := strings.Repeat("a", 10) + strings.Repeat("b", 10) // (20-10)/20 = 0.5

	idx := testIndex(t, []models.RegistryEntry{
		{Name: atThreshold, TaxCode: "at"},
		{Name: aboveThreshold, TaxCode: "above"},
	})

	got := idx.Search(query)
	if len(got) != 1 {
		t.Fatalf("kỳ vọng 1 kết quả, được %d", len(got))
	}
	if got[0].TaxCode != "above" {
		t.Errorf("kỳ vọng giữ bản ghi trên ngưỡng, được %q", got[0].TaxCode)
	}
}

func TestSearchLimit(t *testing.T) {
	var entries []models.RegistryEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, models.RegistryEntry{
			Name:    fmt.Sprintf("hoa sen chi nhanh %d", i),
			TaxCode: fmt.Sprintf("%d", i),
		})
	}
	idx := testIndex(t, entries)

	got := idx.Search("hoa sen")
	if len(got) != 15 {
		t.Fatalf("kỳ vọng cắt còn 15 kết quả, được %d", len(got))
	}
}

func TestSearchStableOrderOnTies(t *testing.T) {
	// các bản ghi đồng điểm phải giữ thứ tự chỉ mục
	idx := testIndex(t, []models.RegistryEntry{
		{Name: "hoa sen mien bac", TaxCode: "1"},
		{Name: "hoa sen mien nam", TaxCode: "2"},
	})

	got := idx.Search("hoa sen mien")
	if len(got) != 2 {
		t.Fatalf("kỳ vọng 2 kết quả, được %d", len(got))
	}
	if got[0].TaxCode != "1" || got[1].TaxCode != "2" {
		t.Errorf("thứ tự không ổn định: %q, %q", got[0].TaxCode, got[1].TaxCode)
	}
}
