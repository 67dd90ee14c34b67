package matching

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"kinh điển", "kitten", "sitting", 3},
		{"giống hệt", "conti", "conti", 0},
		{"một bên rỗng", "", "abc", 3},
		{"hai bên rỗng", "", "", 0},
		{"unicode theo rune", "càfé", "cafe", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"abc", ""}, {"vin group", "vingroup"}}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance không đối xứng với (%q, %q)", p[0], p[1])
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"giống hệt", "conti", "conti", 1.0},
		{"hai bên rỗng", "", "", 1.0},
		{"một bên rỗng", "", "abcd", 0.0},
		{"khác một nửa", "aaaa", "aabb", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestJaroWinklerPrefixBoost(t *testing.T) {
	// cùng một khác biệt, nằm cuối chuỗi phải điểm cao hơn nằm đầu chuỗi
	samePrefix := JaroWinkler("vinhomes", "vinhomed")
	diffPrefix := JaroWinkler("vinhomes", "sinhomes")
	if samePrefix <= diffPrefix {
		t.Errorf("kỳ vọng ưu tiên tiền tố chung: %v <= %v", samePrefix, diffPrefix)
	}
}
