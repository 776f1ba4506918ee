package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKoreanWords(t *testing.T) {
	words := ExtractKoreanWords("오늘 병원에 갔어요. Hello world! 병원 예약", 2)

	// Token Hangul, khử trùng lặp, giữ thứ tự xuất hiện đầu tiên
	assert.Equal(t, []string{"오늘", "병원에", "갔어요", "병원", "예약"}, words)
}

func TestExtractKoreanWordsFiltersStopWordsAndShortTokens(t *testing.T) {
	// "이", "가" là trợ từ; token 1 âm tiết bị loại với minLength=2
	words := ExtractKoreanWords("이 가 밥 친구", 2)
	assert.Equal(t, []string{"친구"}, words)

	// minLength=1 giữ token ngắn nhưng vẫn lọc trợ từ
	words = ExtractKoreanWords("이 밥", 1)
	assert.Equal(t, []string{"밥"}, words)
}

func TestExtractKoreanWordsDefaultMinLength(t *testing.T) {
	// minLength <= 0 dùng mặc định (2)
	words := ExtractKoreanWords("밥 친구", 0)
	assert.Equal(t, []string{"친구"}, words)
}

func TestExtractKoreanWordsEmptyAndNonKorean(t *testing.T) {
	assert.Empty(t, ExtractKoreanWords("", 2))
	assert.Empty(t, ExtractKoreanWords("only english text 123", 2))
}
