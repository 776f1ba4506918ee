package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationFrequency string

const (
	FrequencyDaily  NotificationFrequency = "daily"
	FrequencyTwoDay NotificationFrequency = "two_day"
	FrequencyWeekly NotificationFrequency = "weekly"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DisplayName string    `gorm:"size:150" json:"display_name"`
	Email       string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`

	// Cài đặt thông báo đẩy
	FCMToken      string                `gorm:"type:text" json:"-"`
	Frequency     NotificationFrequency `gorm:"type:varchar(20);not null;default:'weekly'" json:"frequency"`
	PreferredTime string                `gorm:"size:5;not null;default:'09:00'" json:"preferred_time"` // HH:MM
	LastNotified  *time.Time            `json:"last_notified,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Translations []Translation     `json:"-"`
	Vocabulary   []VocabularyEntry `json:"-"`
}
