package models

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry đếm số lần một từ/cụm từ nguồn (theo cặp ngôn ngữ) được dịch.
// Khóa định danh: (user_id, word, source_lang, target_lang) — duy nhất.
type VocabularyEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vocab_identity" json:"user_id"`
	Word        string    `gorm:"type:text;not null;uniqueIndex:idx_vocab_identity" json:"word"`
	Translation string    `gorm:"type:text;not null" json:"translation"`
	SourceLang  string    `gorm:"size:10;not null;uniqueIndex:idx_vocab_identity" json:"source_lang"`
	TargetLang  string    `gorm:"size:10;not null;uniqueIndex:idx_vocab_identity" json:"target_lang"`

	Count        int       `gorm:"not null;default:1" json:"count"`
	IsMastered   bool      `gorm:"default:false" json:"is_mastered"`
	FirstSeen    time.Time `gorm:"not null" json:"first_seen"`
	LastReviewed time.Time `gorm:"not null;index" json:"last_reviewed"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
