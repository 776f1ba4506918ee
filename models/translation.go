package models

import (
	"time"

	"github.com/google/uuid"
)

// Translation là một sự kiện dịch đã ghi nhận. Bản ghi bất biến sau khi tạo,
// chỉ xóa khi người dùng yêu cầu.
type Translation struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SourceText     string    `gorm:"type:text;not null" json:"source_text"`
	TranslatedText string    `gorm:"type:text;not null" json:"translated_text"`
	SourceLang     string    `gorm:"size:10;not null" json:"source_lang"`
	TargetLang     string    `gorm:"size:10;not null" json:"target_lang"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
