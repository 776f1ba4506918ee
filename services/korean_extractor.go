package services

// Tách từ tiếng Hàn ở mức đơn giản: quét các chuỗi âm tiết Hangul rồi lọc
// trợ từ/đuôi câu phổ biến. Phân tích hình thái học đầy đủ (mức KoNLPy) là
// collaborator ngoài, không nằm trong backend này.

const defaultMinWordLength = 2

// Trợ từ và từ đệm hay gặp — không đáng đưa vào bảng từ vựng.
var koreanStopWords = map[string]struct{}{
	"이": {}, "가": {}, "을": {}, "를": {}, "은": {}, "는": {},
	"의": {}, "에": {}, "와": {}, "과": {}, "도": {}, "만": {},
	"부터": {}, "까지": {}, "한테": {}, "께": {}, "로": {}, "으로": {},
	"네": {}, "요": {}, "어": {}, "아": {}, "지": {}, "게": {}, "고": {},
}

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// ExtractKoreanWords trả danh sách token Hangul đã khử trùng lặp (giữ thứ tự
// xuất hiện đầu tiên), bỏ token ngắn hơn minLength và token trong stop-list.
// minLength <= 0 dùng mặc định.
func ExtractKoreanWords(text string, minLength int) []string {
	if minLength <= 0 {
		minLength = defaultMinWordLength
	}

	words := []string{}
	seen := make(map[string]struct{})
	current := []rune{}

	flush := func() {
		if len(current) == 0 {
			return
		}
		word := string(current)
		current = current[:0]
		if len([]rune(word)) < minLength {
			return
		}
		if _, stop := koreanStopWords[word]; stop {
			return
		}
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	for _, r := range text {
		if isHangulSyllable(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()

	return words
}
