package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEncounterCreatesThenIncrements(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	first, err := agg.RecordEncounter(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)
	assert.False(t, first.IsMastered)
	assert.Equal(t, first.FirstSeen, first.LastReviewed)

	second, err := agg.RecordEncounter(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Count)
	assert.False(t, second.LastReviewed.Before(second.FirstSeen))

	// Cùng khóa định danh → vẫn chỉ một entry
	list, err := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Count)
}

func TestRecordEncounterTrimsAndValidates(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	_, err := agg.RecordEncounter(ctx, userID, "   ", "hello", "ko", "en")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = agg.RecordEncounter(ctx, userID, "안녕", "\t\n", "ko", "en")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = agg.RecordEncounter(ctx, userID, "안녕", "hello", "", "en")
	assert.ErrorIs(t, err, ErrValidation)

	// Không có lần ghi nào khi validation fail
	list, err := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Input có khoảng trắng thừa vẫn về cùng khóa
	a, err := agg.RecordEncounter(ctx, userID, " 안녕 ", "hello", "ko", "en")
	require.NoError(t, err)
	b, err := agg.RecordEncounter(ctx, userID, "안녕", " hello ", "ko", "en")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, 2, b.Count)
}

func TestRecordEncounterDistinctKeys(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	_, err := agg.RecordEncounter(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)
	_, err = agg.RecordEncounter(ctx, userID, "안녕", "xin chào", "ko", "vi")
	require.NoError(t, err)
	_, err = agg.RecordEncounter(ctx, uuid.New(), "안녕", "hello", "ko", "en")
	require.NoError(t, err)

	list, err := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRecordEncounterCountMatchesEncounters(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		entry, err := agg.RecordEncounter(ctx, userID, "공부", "study", "ko", "en")
		require.NoError(t, err)
		assert.Equal(t, i+1, entry.Count)
	}
}

// Hai request cùng key chạy song song không được mất increment:
// mutex theo khóa serialize chuỗi đọc-rồi-ghi.
func TestRecordEncounterConcurrentSameKey(t *testing.T) {
	store := newFakeStore()
	store.findDelay = time.Millisecond // nới rộng cửa sổ race nếu không có lock
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := agg.RecordEncounter(ctx, userID, "병원", "hospital", "ko", "en")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := store.ListVocabulary(ctx, userID, 1, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, workers, list[0].Count)
}

func TestSetMastered(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := agg.RecordEncounter(ctx, userID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)

	before := entry.LastReviewed
	time.Sleep(time.Millisecond)

	updated, err := agg.SetMastered(ctx, userID, entry.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsMastered)
	assert.True(t, updated.LastReviewed.After(before))

	updated, err = agg.SetMastered(ctx, userID, entry.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsMastered)
}

func TestSetMasteredNotFound(t *testing.T) {
	store := newFakeStore()
	agg := NewVocabularyAggregator(store)
	ownerID := uuid.New()
	ctx := context.Background()

	entry, err := agg.RecordEncounter(ctx, ownerID, "안녕", "hello", "ko", "en")
	require.NoError(t, err)

	// ID không tồn tại
	_, err = agg.SetMastered(ctx, ownerID, uuid.New(), true)
	assert.ErrorIs(t, err, ErrNotFound)

	// Entry của user khác cũng là NotFound
	_, err = agg.SetMastered(ctx, uuid.New(), entry.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordEncounterStorageError(t *testing.T) {
	store := newFakeStore()
	store.failVocabWrites = true
	agg := NewVocabularyAggregator(store)

	_, err := agg.RecordEncounter(context.Background(), uuid.New(), "안녕", "hello", "ko", "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))
}
