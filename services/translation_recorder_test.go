package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorder(store *fakeStore) *TranslationRecorder {
	return NewTranslationRecorder(store, NewVocabularyAggregator(store))
}

func TestRecordPersistsTranslationAndVocabulary(t *testing.T) {
	store := newFakeStore()
	recorder := newRecorder(store)
	userID := uuid.New()
	ctx := context.Background()

	translation, err := recorder.Record(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, translation.ID)
	assert.Equal(t, "안녕", translation.SourceText)

	list, err := store.ListTranslations(ctx, userID, 1, 50)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	vocab, err := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, err)
	require.Len(t, vocab, 1)
	assert.Equal(t, "안녕", vocab[0].Word)
	assert.Equal(t, 1, vocab[0].Count)
}

func TestRecordValidationRejectsBeforeAnyWrite(t *testing.T) {
	store := newFakeStore()
	recorder := newRecorder(store)
	userID := uuid.New()
	ctx := context.Background()

	_, err := recorder.Record(ctx, userID, "  ", "hello", "ko", "en")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = recorder.Record(ctx, userID, "안녕", "", "ko", "en")
	assert.ErrorIs(t, err, ErrValidation)

	list, err := store.ListTranslations(ctx, userID, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Translation đã lưu mà bước vocabulary lỗi: bản dịch không rollback,
// caller nhận PartialFailure thay vì success chung chung.
func TestRecordPartialFailure(t *testing.T) {
	store := newFakeStore()
	store.failVocabWrites = true
	recorder := newRecorder(store)
	userID := uuid.New()
	ctx := context.Background()

	translation, err := recorder.Record(ctx, userID, "안녕", "hello", "ko", "en")
	require.Error(t, err)

	var partial *PartialFailure
	require.True(t, errors.As(err, &partial))
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
	assert.Equal(t, "안녕", partial.Translation.SourceText)
	require.NotNil(t, translation)
	assert.Equal(t, partial.Translation.ID, translation.ID)

	// Bản dịch vẫn truy vấn được qua list
	list, listErr := store.ListTranslations(ctx, userID, 1, 50)
	require.NoError(t, listErr)
	require.Len(t, list, 1)
	assert.Equal(t, translation.ID, list[0].ID)

	// Và bảng từ vựng không có increment
	vocab, vocabErr := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, vocabErr)
	assert.Empty(t, vocab)
}

// Submit ("안녕","hello","ko","en") hai lần rồi lấy daily summary ngay:
// một entry count=2, total_translations=2, unique_words=1.
func TestEndToEndDoubleSubmissionDailySummary(t *testing.T) {
	store := newFakeStore()
	recorder := newRecorder(store)
	userID := uuid.New()
	ctx := context.Background()

	_, err := recorder.Record(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)
	_, err = recorder.Record(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)

	now := time.Now().UTC()
	windowStart := DailyWindow(now)

	translations, err := store.TranslationsSince(ctx, userID, windowStart)
	require.NoError(t, err)
	vocabulary, err := store.VocabularySince(ctx, userID, windowStart)
	require.NoError(t, err)

	report := Summarize(translations, vocabulary, windowStart)

	assert.Equal(t, 2, report.TotalTranslations)
	assert.Equal(t, 1, report.UniqueWords)
	require.Len(t, report.MostFrequentWords, 1)
	assert.Equal(t, WordFrequency{Word: "안녕", Count: 2, Translation: "hello"}, report.MostFrequentWords[0])
}

func TestBrandNewUserWeeklySummaryIsEmpty(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	ctx := context.Background()

	windowStart := WeeklyWindow(time.Now().UTC())
	translations, err := store.TranslationsSince(ctx, userID, windowStart)
	require.NoError(t, err)
	vocabulary, err := store.VocabularySince(ctx, userID, windowStart)
	require.NoError(t, err)

	report := Summarize(translations, vocabulary, windowStart)

	assert.Equal(t, 0, report.TotalTranslations)
	assert.Equal(t, 0, report.UniqueWords)
	assert.Empty(t, report.MostFrequentWords)
}
