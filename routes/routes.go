package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dangkhoa/translearn-backend/controllers"
	"github.com/dangkhoa/translearn-backend/middleware"
	"github.com/dangkhoa/translearn-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.Use(middleware.DBMiddleware(db))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	translations := api.Group("/translations")
	{
		translations.Use(middleware.AuthMiddleware())
		translations.POST("", controllers.CreateTranslation)
		translations.GET("", controllers.GetTranslations)
		translations.POST("/proxy", controllers.ProxyTranslation)

		// Summary phải đăng ký trước /:id để không bị nuốt route
		translations.GET("/daily-summary", controllers.GetDailySummary)
		translations.GET("/two-day-summary", controllers.GetTwoDaySummary)
		translations.GET("/weekly-summary", controllers.GetWeeklySummary)

		translations.DELETE("/:id", controllers.DeleteTranslation)
	}

	vocabulary := api.Group("/vocabulary")
	{
		vocabulary.Use(middleware.AuthMiddleware())
		vocabulary.GET("", controllers.GetVocabulary)
		vocabulary.POST("/extract", controllers.ExtractKoreanWords)
		vocabulary.GET("/:id", controllers.GetVocabularyItem)
		vocabulary.PATCH("/:id", controllers.UpdateVocabularyMastery)
		vocabulary.DELETE("/:id", controllers.DeleteVocabularyItem)
	}

	users := api.Group("/users")
	{
		users.Use(middleware.AuthMiddleware())
		users.POST("/fcm-token", controllers.UpdateFCMToken)
		users.GET("/preferences", controllers.GetPreferences)
		users.POST("/preferences", controllers.UpdatePreferences)
	}

	notifications := api.Group("/notifications")
	{
		notifications.Use(middleware.AuthMiddleware())
		notifications.GET("", controllers.GetNotifications)
		notifications.GET("/unread-count", controllers.GetUnreadCount)
		notifications.PATCH("/:id/read", controllers.MarkNotificationAsRead)
		notifications.PATCH("/read-all", controllers.MarkAllAsRead)
		notifications.DELETE("/:id", controllers.DeleteNotification)
	}

	r.GET("/ws/notifications", ws.HandleNotificationWebSocket)

	return r
}
