package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangkhoa/translearn-backend/services"
)

// currentUserID lấy user id đã được AuthMiddleware xác thực.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return uuid.Nil, false
	}
	return userID, true
}

func storeFrom(c *gin.Context) *services.GormStore {
	db := c.MustGet("db").(*gorm.DB)
	return services.NewStore(db)
}

// statusFor ánh xạ taxonomy lỗi service sang HTTP status.
// Lỗi storage trả 400 theo contract API hiện tại (client đang xử lý vậy).
func statusFor(err error) int {
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
