package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dangkhoa/translearn-backend/models"
)

type FCMTokenInput struct {
	FCMToken string `json:"fcm_token" binding:"required"`
}

type PreferencesInput struct {
	Frequency     models.NotificationFrequency `json:"frequency" binding:"required,oneof=daily two_day weekly"`
	PreferredTime string                       `json:"preferred_time" binding:"required,len=5"` // HH:MM
}

// POST /api/users/fcm-token — lưu token thiết bị cho push notification
func UpdateFCMToken(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input FCMTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("fcm_token", input.FCMToken).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update FCM token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "FCM token updated successfully",
		"user_id": userID,
	})
}

// POST /api/users/preferences
func UpdatePreferences(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"frequency":      input.Frequency,
			"preferred_time": input.PreferredTime,
		}).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Preferences updated successfully",
		"frequency":      input.Frequency,
		"preferred_time": input.PreferredTime,
	})
}

// GET /api/users/preferences
func GetPreferences(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Người dùng không tồn tại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"frequency":              user.Frequency,
		"preferred_time":         user.PreferredTime,
		"last_notification_sent": user.LastNotified,
	})
}
