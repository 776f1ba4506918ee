package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dangkhoa/translearn-backend/services"
)

type UpdateMasteryInput struct {
	IsMastered *bool `json:"is_mastered" binding:"required"`
}

type ExtractWordsInput struct {
	Text      string `json:"text" binding:"required"`
	MinLength int    `json:"min_length"`
}

// GET /api/vocabulary?page=&per_page=
func GetVocabulary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	list, err := storeFrom(c).ListVocabulary(c.Request.Context(), userID, page, perPage)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to get vocabulary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /api/vocabulary/:id
func GetVocabularyItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocabulary id"})
		return
	}

	entry, err := storeFrom(c).GetVocabulary(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vocabulary item not found"})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": "Failed to get vocabulary item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// PATCH /api/vocabulary/:id — cập nhật cờ đã thuộc
func UpdateVocabularyMastery(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocabulary id"})
		return
	}

	var input UpdateMasteryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aggregator := services.NewVocabularyAggregator(storeFrom(c))
	entry, err := aggregator.SetMastered(c.Request.Context(), userID, id, *input.IsMastered)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vocabulary item not found"})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": "Failed to update vocabulary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DELETE /api/vocabulary/:id
func DeleteVocabularyItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vocabulary id"})
		return
	}

	if err := storeFrom(c).DeleteVocabulary(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vocabulary item not found"})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": "Failed to delete vocabulary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vocabulary item deleted successfully"})
}

// POST /api/vocabulary/extract — tách từ Hangul từ đoạn văn bản
func ExtractKoreanWords(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input ExtractWordsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	words := services.ExtractKoreanWords(input.Text, input.MinLength)
	c.JSON(http.StatusOK, gin.H{
		"words": words,
		"count": len(words),
	})
}
