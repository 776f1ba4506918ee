package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dangkhoa/translearn-backend/models"
)

// fakeStore giả lập remote store trong RAM. Mỗi method là một "round trip"
// riêng — giữa Find và Update không có khóa nào, giống store thật.
type fakeStore struct {
	mu           sync.Mutex
	translations []models.Translation
	vocabulary   []models.VocabularyEntry

	failVocabWrites bool
	findDelay       time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) CreateTranslation(ctx context.Context, t *models.Translation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	t.ID = uuid.New()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	f.translations = append(f.translations, *t)
	return nil
}

func (f *fakeStore) ListTranslations(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []models.Translation
	for _, t := range f.translations {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeStore) TranslationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []models.Translation
	for _, t := range f.translations {
		if t.UserID == userID && (since.IsZero() || t.CreatedAt.After(since)) {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeStore) DeleteTranslation(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.translations {
		if t.ID == id && t.UserID == userID {
			f.translations = append(f.translations[:i], f.translations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) FindVocabularyByKey(ctx context.Context, userID uuid.UUID, word, sourceLang, targetLang string) (*models.VocabularyEntry, error) {
	if f.findDelay > 0 {
		time.Sleep(f.findDelay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.vocabulary {
		if v.UserID == userID && v.Word == word && v.SourceLang == sourceLang && v.TargetLang == targetLang {
			entry := v // trả bản copy như store thật
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failVocabWrites {
		return fmt.Errorf("%w: injected failure", ErrStorageUnavailable)
	}
	entry.ID = uuid.New()
	f.vocabulary = append(f.vocabulary, *entry)
	return nil
}

func (f *fakeStore) UpdateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failVocabWrites {
		return fmt.Errorf("%w: injected failure", ErrStorageUnavailable)
	}
	for i := range f.vocabulary {
		if f.vocabulary[i].ID == entry.ID {
			f.vocabulary[i] = *entry
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) GetVocabulary(ctx context.Context, userID, id uuid.UUID) (*models.VocabularyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.vocabulary {
		if v.ID == id && v.UserID == userID {
			entry := v
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) ListVocabulary(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.VocabularyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []models.VocabularyEntry
	for _, v := range f.vocabulary {
		if v.UserID == userID {
			list = append(list, v)
		}
	}
	return list, nil
}

func (f *fakeStore) VocabularySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.VocabularyEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []models.VocabularyEntry
	for _, v := range f.vocabulary {
		if v.UserID == userID && (since.IsZero() || v.LastReviewed.After(since)) {
			list = append(list, v)
		}
	}
	return list, nil
}

func (f *fakeStore) DeleteVocabulary(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, v := range f.vocabulary {
		if v.ID == id && v.UserID == userID {
			f.vocabulary = append(f.vocabulary[:i], f.vocabulary[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
