package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangkhoa/translearn-backend/models"
)

// Giới hạn số bản ghi đọc cho summary — lịch sử rất dài không load hết vào RAM.
const summaryFetchLimit = 1000

// Timeout mặc định cho mỗi lần gọi DB.
const storeTimeout = 5 * time.Second

type TranslationStore interface {
	CreateTranslation(ctx context.Context, t *models.Translation) error
	ListTranslations(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.Translation, error)
	TranslationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Translation, error)
	DeleteTranslation(ctx context.Context, userID, id uuid.UUID) error
}

type VocabularyStore interface {
	// FindVocabularyByKey trả (nil, nil) khi chưa có entry cho khóa định danh.
	FindVocabularyByKey(ctx context.Context, userID uuid.UUID, word, sourceLang, targetLang string) (*models.VocabularyEntry, error)
	CreateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error
	UpdateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error
	GetVocabulary(ctx context.Context, userID, id uuid.UUID) (*models.VocabularyEntry, error)
	ListVocabulary(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.VocabularyEntry, error)
	VocabularySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.VocabularyEntry, error)
	DeleteVocabulary(ctx context.Context, userID, id uuid.UUID) error
}

type Store interface {
	TranslationStore
	VocabularyStore
}

// GormStore hiện thực Store trên PostgreSQL qua GORM. Không giữ state ngoài
// connection pool; inject qua constructor để test thay bằng fake store.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// wrapErr ánh xạ lỗi driver sang taxonomy của service.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}
	return page, perPage
}

// ===== Translations =====

func (s *GormStore) CreateTranslation(ctx context.Context, t *models.Translation) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return wrapErr(s.db.WithContext(ctx).Create(t).Error)
}

func (s *GormStore) ListTranslations(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.Translation, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	page, perPage = normalizePage(page, perPage)
	var list []models.Translation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

// TranslationsSince đẩy filter cửa sổ thời gian xuống query thay vì
// fetch toàn bộ rồi lọc trong RAM. since zero = toàn bộ lịch sử.
func (s *GormStore) TranslationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Translation, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		q = q.Where("created_at > ?", since)
	}
	var list []models.Translation
	err := q.Order("created_at DESC").Limit(summaryFetchLimit).Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (s *GormStore) DeleteTranslation(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Translation{})
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ===== Vocabulary =====

func (s *GormStore) FindVocabularyByKey(ctx context.Context, userID uuid.UUID, word, sourceLang, targetLang string) (*models.VocabularyEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var entry models.VocabularyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND word = ? AND source_lang = ? AND target_lang = ?",
			userID, word, sourceLang, targetLang).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &entry, nil
}

func (s *GormStore) CreateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return wrapErr(s.db.WithContext(ctx).Create(entry).Error)
}

// UpdateVocabulary ghi toàn bộ các field đếm/trạng thái trong một lần —
// không có update từng phần dở dang.
func (s *GormStore) UpdateVocabulary(ctx context.Context, entry *models.VocabularyEntry) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return wrapErr(s.db.WithContext(ctx).
		Model(&models.VocabularyEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"count":         entry.Count,
			"is_mastered":   entry.IsMastered,
			"translation":   entry.Translation,
			"last_reviewed": entry.LastReviewed,
		}).Error)
}

func (s *GormStore) GetVocabulary(ctx context.Context, userID, id uuid.UUID) (*models.VocabularyEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var entry models.VocabularyEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &entry, nil
}

func (s *GormStore) ListVocabulary(ctx context.Context, userID uuid.UUID, page, perPage int) ([]models.VocabularyEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	page, perPage = normalizePage(page, perPage)
	var list []models.VocabularyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_reviewed DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (s *GormStore) VocabularySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.VocabularyEntry, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !since.IsZero() {
		q = q.Where("last_reviewed > ?", since)
	}
	var list []models.VocabularyEntry
	err := q.Order("last_reviewed DESC").Limit(summaryFetchLimit).Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (s *GormStore) DeleteVocabulary(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.VocabularyEntry{})
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
