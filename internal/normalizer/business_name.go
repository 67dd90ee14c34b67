package normalizer

import (
	"regexp"
	"strings"
)

// boilerplateKeywords các cụm từ pháp lý/ngành nghề phổ biến trong tên doanh
// nghiệp, bỏ đi trước khi so khớp. Mỗi cụm chỉ khớp theo nguyên từ (word
// boundary) nên "cp" không ăn vào "co phan".
var boilerplateKeywords = []string{
	"cong ty",
	"tnhh",
	"cp",
	"co phan",
	"trach nhiem huu han",
	"viet nam",
	"tap doan",
	"group",
	"mtv",
	"mot thanh vien",
	"thuong mai",
	"dich vu",
	"san xuat",
	"dau tu",
	"phat trien",
}

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)

	keywordPatterns []*regexp.Regexp
)

func init() {
	keywordPatterns = make([]*regexp.Regexp, 0, len(boilerplateKeywords))
	for _, kw := range boilerplateKeywords {
		keywordPatterns = append(keywordPatterns, regexp.MustCompile(`\b`+kw+`\b`))
	}
}

// NormalizeBusinessName đưa tên doanh nghiệp về dạng chuẩn để so khớp:
// bỏ dấu, lowercase, bỏ từ khóa pháp lý, bỏ ký tự đặc biệt, gộp khoảng trắng.
// Có thể trả về chuỗi rỗng nếu tên chỉ gồm từ khóa pháp lý.
func NormalizeBusinessName(name string) string {
	s := strings.ToLower(FoldDiacritics(name))
	// bỏ từ khóa trước khi bỏ ký tự đặc biệt, vì \b dựa vào dấu câu còn lại
	for _, re := range keywordPatterns {
		s = re.ReplaceAllString(s, "")
	}
	s = reNonAlnum.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
