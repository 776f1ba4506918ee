package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dangkhoa/translearn-backend/models"
	"github.com/dangkhoa/translearn-backend/utils"
	"github.com/dangkhoa/translearn-backend/ws"
)

// Khoảng cách tối thiểu giữa 2 lần thông báo theo tần suất user chọn.
var frequencyInterval = map[models.NotificationFrequency]time.Duration{
	models.FrequencyDaily:  24 * time.Hour,
	models.FrequencyTwoDay: 48 * time.Hour,
	models.FrequencyWeekly: 7 * 24 * time.Hour,
}

// NotificationScheduler chạy nền, mỗi giờ quét user đến hạn nhận tóm tắt:
// tính summary theo tần suất đã chọn, ghi Notification, đẩy badge qua
// websocket và gửi email digest nếu SMTP đã cấu hình.
type NotificationScheduler struct {
	db    *gorm.DB
	store Store
	stop  chan struct{}
	done  chan struct{}
}

func NewNotificationScheduler(db *gorm.DB) *NotificationScheduler {
	return &NotificationScheduler{
		db:    db,
		store: NewStore(db),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (s *NotificationScheduler) Start() {
	go s.loop()
	log.Println("Notification scheduler started")
}

func (s *NotificationScheduler) Stop() {
	close(s.stop)
	<-s.done
	log.Println("Notification scheduler stopped")
}

func (s *NotificationScheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CheckAndNotify(time.Now())
		case <-s.stop:
			return
		}
	}
}

// CheckAndNotify quét toàn bộ user một lượt; now truyền từ ngoài để test được.
func (s *NotificationScheduler) CheckAndNotify(now time.Time) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		log.Println("scheduler: failed to load users:", err)
		return
	}

	for i := range users {
		if err := s.notifyUser(&users[i], now); err != nil {
			log.Printf("scheduler: notify %s failed: %v", users[i].ID, err)
		}
	}
}

func preferredHour(preferredTime string) int {
	parts := strings.SplitN(preferredTime, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 9
	}
	return h
}

func (s *NotificationScheduler) notifyUser(user *models.User, now time.Time) error {
	if now.Hour() != preferredHour(user.PreferredTime) {
		return nil
	}

	interval, ok := frequencyInterval[user.Frequency]
	if !ok {
		interval = frequencyInterval[models.FrequencyWeekly]
	}
	if user.LastNotified != nil && now.Sub(*user.LastNotified) < interval {
		return nil
	}

	var windowStart time.Time
	switch user.Frequency {
	case models.FrequencyDaily:
		windowStart = DailyWindow(now)
	case models.FrequencyTwoDay:
		windowStart = TwoDayWindow(now)
	default:
		windowStart = WeeklyWindow(now)
	}

	ctx := context.Background()
	translations, err := s.store.TranslationsSince(ctx, user.ID, windowStart)
	if err != nil {
		return err
	}
	vocabulary, err := s.store.VocabularySince(ctx, user.ID, windowStart)
	if err != nil {
		return err
	}

	report := Summarize(translations, vocabulary, windowStart)
	// Chưa học gì trong kỳ thì không spam
	if report.TotalTranslations == 0 && report.UniqueWords == 0 {
		return nil
	}

	notif := models.Notification{
		UserID: user.ID,
		Title:  summaryTitle(user.Frequency),
		Message: fmt.Sprintf("You translated %d phrases and reviewed %d words. Keep it up!",
			report.TotalTranslations, report.UniqueWords),
		Type: string(user.Frequency) + "_summary",
	}
	if err := s.db.Create(&notif).Error; err != nil {
		return err
	}

	var unread int64
	s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", user.ID).
		Count(&unread)
	ws.SendBadgeUpdate(user.ID.String(), unread)

	if os.Getenv("SMTP_EMAIL") != "" {
		email := user.Email
		title := notif.Title
		body := buildDigestEmail(user.DisplayName, report)
		go func() {
			if err := utils.SendEmail(email, title, body); err != nil {
				log.Println("scheduler: email failed:", err)
			}
		}()
	}

	return s.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_notified", now).Error
}

func summaryTitle(freq models.NotificationFrequency) string {
	switch freq {
	case models.FrequencyDaily:
		return "Your daily learning summary"
	case models.FrequencyTwoDay:
		return "Your two-day learning summary"
	default:
		return "Your weekly learning summary"
	}
}

func buildDigestEmail(name string, report SummaryReport) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "<h3>Hi %s,</h3>", name)
	fmt.Fprintf(b, "<p>You translated <b>%d</b> phrases and reviewed <b>%d</b> words.</p>",
		report.TotalTranslations, report.UniqueWords)
	if len(report.MostFrequentWords) > 0 {
		b.WriteString("<p>Words you met most often:</p><ul>")
		for _, w := range report.MostFrequentWords {
			fmt.Fprintf(b, "<li>%s — %s (%d times)</li>", w.Word, w.Translation, w.Count)
		}
		b.WriteString("</ul>")
	}
	b.WriteString("<hr><p><i>This is an automated email, please do not reply.</i></p>")
	return b.String()
}
