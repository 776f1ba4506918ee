package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dangkhoa/translearn-backend/models"
)

// keyedMutex serialize các thao tác trên cùng một khóa định danh.
// Lock được giải phóng khỏi map khi không còn ai giữ để map không phình mãi.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyLock)}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}

// Registry lock dùng chung cho cả process: hai request cùng key phải đi qua
// cùng một mutex dù mỗi controller tạo aggregator riêng.
var encounterLocks = newKeyedMutex()

// VocabularyAggregator duy trì bảng tần suất từ vựng theo từng user.
// Store không có atomic increment nên chuỗi đọc-rồi-ghi được serialize
// bằng mutex theo khóa (user, word, source_lang, target_lang).
type VocabularyAggregator struct {
	store VocabularyStore
}

func NewVocabularyAggregator(store VocabularyStore) *VocabularyAggregator {
	return &VocabularyAggregator{store: store}
}

func encounterKey(userID uuid.UUID, word, sourceLang, targetLang string) string {
	return userID.String() + "\x00" + word + "\x00" + sourceLang + "\x00" + targetLang
}

// RecordEncounter ghi nhận một lần gặp từ: tạo entry mới với count=1 hoặc
// tăng count entry sẵn có và làm mới last_reviewed. Đúng một lần ghi DB cho
// mỗi lần gọi thành công; không ghi gì khi input không hợp lệ.
func (a *VocabularyAggregator) RecordEncounter(ctx context.Context, userID uuid.UUID, word, translation, sourceLang, targetLang string) (*models.VocabularyEntry, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return nil, fmt.Errorf("%w: word and translation must not be empty", ErrValidation)
	}
	if sourceLang == "" || targetLang == "" {
		return nil, fmt.Errorf("%w: source_lang and target_lang are required", ErrValidation)
	}

	key := encounterKey(userID, word, sourceLang, targetLang)
	encounterLocks.Lock(key)
	defer encounterLocks.Unlock(key)

	existing, err := a.store.FindVocabularyByKey(ctx, userID, word, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing != nil {
		existing.Count++
		existing.LastReviewed = now
		if err := a.store.UpdateVocabulary(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	entry := &models.VocabularyEntry{
		UserID:       userID,
		Word:         word,
		Translation:  translation,
		SourceLang:   sourceLang,
		TargetLang:   targetLang,
		Count:        1,
		IsMastered:   false,
		FirstSeen:    now,
		LastReviewed: now,
	}
	if err := a.store.CreateVocabulary(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetMastered cập nhật cờ đã thuộc và làm mới last_reviewed. Entry không
// tồn tại hoặc thuộc user khác đều trả ErrNotFound.
func (a *VocabularyAggregator) SetMastered(ctx context.Context, userID, entryID uuid.UUID, isMastered bool) (*models.VocabularyEntry, error) {
	entry, err := a.store.GetVocabulary(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.IsMastered = isMastered
	entry.LastReviewed = time.Now().UTC()
	if err := a.store.UpdateVocabulary(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
