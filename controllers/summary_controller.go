package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dangkhoa/translearn-backend/services"
)

func summaryForWindow(c *gin.Context, window func(time.Time) time.Time) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	store := storeFrom(c)
	ctx := c.Request.Context()
	windowStart := window(time.Now())

	translations, err := store.TranslationsSince(ctx, userID, windowStart)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to get summary: " + err.Error()})
		return
	}
	vocabulary, err := store.VocabularySince(ctx, userID, windowStart)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to get summary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.Summarize(translations, vocabulary, windowStart))
}

// GET /api/translations/daily-summary — thống kê 24h gần nhất
func GetDailySummary(c *gin.Context) {
	summaryForWindow(c, services.DailyWindow)
}

// GET /api/translations/two-day-summary — thống kê 48h gần nhất
func GetTwoDaySummary(c *gin.Context) {
	summaryForWindow(c, services.TwoDayWindow)
}

// GET /api/translations/weekly-summary — toàn bộ lịch sử (hành vi hiện có)
func GetWeeklySummary(c *gin.Context) {
	summaryForWindow(c, services.WeeklyWindow)
}
