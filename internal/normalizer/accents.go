package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldDiacritics loại bỏ dấu tiếng Việt một cách an toàn, giữ nguyên hoa thường.
// Dùng NFD + lọc combining mark thay vì bảng ký tự literal để không phụ thuộc
// encoding của nguồn dữ liệu.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// input hỏng encoding: trả best-effort thay vì fail
		out = s
	}
	// đ/Đ không phân rã qua NFD nên phải map riêng
	out = strings.Map(foldDRune, out)
	if isASCII(out) {
		return out
	}
	// ký tự ngoài phạm vi tiếng Việt còn sót lại: chuyển ASCII gần đúng
	return unidecode.Unidecode(out)
}

// isMn kiểm tra rune có phải combining mark không
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func foldDRune(r rune) rune {
	switch r {
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	return r
}

func isASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}
