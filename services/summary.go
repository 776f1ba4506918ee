package services

import (
	"sort"
	"time"

	"github.com/dangkhoa/translearn-backend/models"
)

// Số từ tối đa trong bảng xếp hạng most_frequent_words.
const topWordsLimit = 10

type WordFrequency struct {
	Word        string `json:"word"`
	Count       int    `json:"count"`
	Translation string `json:"translation"`
}

// SummaryReport là báo cáo học tập theo cửa sổ thời gian. Tính on-demand,
// không lưu lại.
type SummaryReport struct {
	TotalTranslations int             `json:"total_translations"`
	UniqueWords       int             `json:"unique_words"`
	MostFrequentWords []WordFrequency `json:"most_frequent_words"`
}

// Summarize rút gọn lịch sử dịch + từ vựng thành báo cáo trong cửa sổ
// (windowStart, ∞). Biên cửa sổ là strictly-greater-than: bản ghi đúng tại
// windowStart bị loại. windowStart zero = toàn bộ lịch sử.
// Hàm thuần: không đọc clock, không side effect.
func Summarize(translations []models.Translation, vocabulary []models.VocabularyEntry, windowStart time.Time) SummaryReport {
	total := 0
	for _, t := range translations {
		if t.CreatedAt.After(windowStart) {
			total++
		}
	}

	recent := make([]models.VocabularyEntry, 0, len(vocabulary))
	for _, v := range vocabulary {
		if v.LastReviewed.After(windowStart) {
			recent = append(recent, v)
		}
	}
	uniqueWords := len(recent)

	// Stable sort: các entry cùng count giữ nguyên thứ tự đầu vào.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Count > recent[j].Count
	})
	if len(recent) > topWordsLimit {
		recent = recent[:topWordsLimit]
	}

	top := make([]WordFrequency, 0, len(recent))
	for _, v := range recent {
		top = append(top, WordFrequency{
			Word:        v.Word,
			Count:       v.Count,
			Translation: v.Translation,
		})
	}

	return SummaryReport{
		TotalTranslations: total,
		UniqueWords:       uniqueWords,
		MostFrequentWords: top,
	}
}

// Ba cửa sổ chuẩn, tính từ now do caller truyền vào.

func DailyWindow(now time.Time) time.Time {
	return now.Add(-24 * time.Hour)
}

func TwoDayWindow(now time.Time) time.Time {
	return now.Add(-48 * time.Hour)
}

// WeeklyWindow trả zero time: summary "weekly" hiện trả thống kê toàn bộ
// lịch sử chứ không giới hạn 7 ngày — client đang dựa vào hành vi này.
func WeeklyWindow(now time.Time) time.Time {
	return time.Time{}
}
