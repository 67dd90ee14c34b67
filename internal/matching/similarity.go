// Package matching cung cấp các phép đo khoảng cách và độ tương đồng chuỗi
// dùng cho so khớp tên doanh nghiệp.
package matching

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Distance tính khoảng cách Levenshtein giữa hai chuỗi, đơn vị rune,
// chi phí 1 cho mỗi phép chèn/xóa/thay thế
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity tính độ tương đồng trong [0, 1]: (maxLen - distance) / maxLen.
// Hai chuỗi rỗng coi là giống nhau hoàn toàn.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := Distance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

// JaroWinkler độ tương đồng Jaro-Winkler, ưu tiên tiền tố chung.
// Dùng cho đánh giá gợi ý tên, không dùng trong search chính.
func JaroWinkler(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}
