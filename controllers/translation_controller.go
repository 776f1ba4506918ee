package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dangkhoa/translearn-backend/services"
)

type CreateTranslationInput struct {
	SourceText     string `json:"source_text" binding:"required"`
	TranslatedText string `json:"translated_text" binding:"required"`
	SourceLang     string `json:"source_lang" binding:"required"`
	TargetLang     string `json:"target_lang" binding:"required"`
}

type ProxyTranslationInput struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
}

// POST /api/translations
// Lưu bản dịch rồi cập nhật bảng từ vựng. Nếu bước từ vựng lỗi sau khi bản
// dịch đã lưu thì trả 207 kèm bản ghi — client retry riêng bước aggregation.
func CreateTranslation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateTranslationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := storeFrom(c)
	recorder := services.NewTranslationRecorder(store, services.NewVocabularyAggregator(store))

	translation, err := recorder.Record(c.Request.Context(), userID,
		input.SourceText, input.TranslatedText, input.SourceLang, input.TargetLang)
	if err != nil {
		var partial *services.PartialFailure
		if errors.As(err, &partial) {
			c.JSON(http.StatusMultiStatus, gin.H{
				"translation": partial.Translation,
				"error":       "Translation saved but vocabulary update failed",
				"retryable":   true,
			})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": "Failed to create translation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, translation)
}

// GET /api/translations?page=&per_page=
func GetTranslations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	list, err := storeFrom(c).ListTranslations(c.Request.Context(), userID, page, perPage)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to get translations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// DELETE /api/translations/:id
func DeleteTranslation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid translation id"})
		return
	}

	if err := storeFrom(c).DeleteTranslation(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": "Failed to delete translation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Translation deleted successfully"})
}

// POST /api/translations/proxy
// Proxy sang Papago; chưa cấu hình Papago hoặc Papago lỗi thì fallback Gemini.
func ProxyTranslation(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input ProxyTranslationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var translated string
	var err error
	if services.PapagoConfigured() {
		translated, err = services.TranslateWithPapago(ctx, input.Text, input.SourceLang, input.TargetLang)
	} else {
		err = errors.New("papago is not configured")
	}
	if err != nil {
		translated, err = services.TranslateWithGemini(ctx, input.Text, input.SourceLang, input.TargetLang)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Translation proxy failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}
