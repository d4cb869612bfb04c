package handler

import (
	"errors"
	"net/http"

	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"
	"github.com/lucianobritez019-dotcom/autos-clasicos/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsHandler struct{}

// GetSettings returns the singleton row, or an empty object when none has
// been saved yet so callers fall back to their defaults.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	var settings models.Settings
	if err := database.DB.First(&settings, models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type SaveSettingsRequest struct {
	HeroImageURL   string `json:"heroImageUrl"`
	WhatsappNumber string `json:"whatsappNumber"`
	SiteTitle      string `json:"siteTitle"`
	LogoURL        string `json:"logoUrl"`
}

// SaveSettings upserts the singleton row in one statement: create on first
// save, full four-field overwrite afterwards.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.HeroImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "heroImageUrl is required"})
		return
	}

	settings := models.Settings{
		ID:             models.SettingsID,
		HeroImageURL:   req.HeroImageURL,
		WhatsappNumber: req.WhatsappNumber,
		SiteTitle:      req.SiteTitle,
		LogoURL:        req.LogoURL,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hero_image_url", "whatsapp_number", "site_title", "logo_url", "updated_at",
		}),
	}).Create(&settings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
