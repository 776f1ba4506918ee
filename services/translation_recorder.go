package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dangkhoa/translearn-backend/models"
)

// TranslationRecorder lưu một sự kiện dịch và kích hoạt đúng một lần
// aggregation từ vựng cho mỗi lần submit.
type TranslationRecorder struct {
	store      TranslationStore
	aggregator *VocabularyAggregator
}

func NewTranslationRecorder(store TranslationStore, aggregator *VocabularyAggregator) *TranslationRecorder {
	return &TranslationRecorder{store: store, aggregator: aggregator}
}

// Record ghi Translation (append-only) rồi gọi aggregator với source_text làm
// từ cần theo dõi — hệ thống đếm tần suất cụm từ nguồn nguyên văn, tách từ
// tiếng Hàn là bước tùy chọn riêng (xem ExtractKoreanWords).
//
// Hai lần ghi KHÔNG nằm trong transaction: nếu translation đã lưu mà bước
// vocabulary lỗi thì trả *PartialFailure kèm bản ghi đã lưu, không rollback.
func (r *TranslationRecorder) Record(ctx context.Context, userID uuid.UUID, sourceText, translatedText, sourceLang, targetLang string) (*models.Translation, error) {
	sourceText = strings.TrimSpace(sourceText)
	translatedText = strings.TrimSpace(translatedText)
	if sourceText == "" || translatedText == "" {
		return nil, fmt.Errorf("%w: source_text and translated_text must not be empty", ErrValidation)
	}
	if sourceLang == "" || targetLang == "" {
		return nil, fmt.Errorf("%w: source_lang and target_lang are required", ErrValidation)
	}

	t := &models.Translation{
		UserID:         userID,
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}
	if err := r.store.CreateTranslation(ctx, t); err != nil {
		return nil, err
	}

	if _, err := r.aggregator.RecordEncounter(ctx, userID, sourceText, translatedText, sourceLang, targetLang); err != nil {
		return t, &PartialFailure{Translation: *t, Err: err}
	}
	return t, nil
}
