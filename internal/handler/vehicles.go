package handler

import (
	"net/http"

	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"
	"github.com/lucianobritez019-dotcom/autos-clasicos/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type VehicleHandler struct{}

// ListVehicles returns every vehicle, newest-created first.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles := []models.Vehicle{}
	if err := database.DB.Order("created_at DESC, id DESC").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

type SaveVehicleRequest struct {
	Slug         string   `json:"slug"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	PriceUSD     float64  `json:"priceUsd"`
	Thumbnail    string   `json:"thumbnail"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`
	Description  string   `json:"description"`
	Sold         bool     `json:"sold"`
	MediaOrdered []string `json:"mediaOrdered"`
}

// SaveVehicle upserts by slug in a single insert-or-replace statement. All
// required fields are rejected at their zero value, so a price of 0 is
// indistinguishable from a missing price and fails validation.
func (h *VehicleHandler) SaveVehicle(c *gin.Context) {
	var req SaveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Slug == "" || req.Brand == "" || req.Model == "" ||
		req.Year == 0 || req.PriceUSD == 0 || req.Thumbnail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	vehicle := models.Vehicle{
		Slug:         req.Slug,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		PriceUSD:     req.PriceUSD,
		Thumbnail:    req.Thumbnail,
		Images:       models.StringList(req.Images),
		Videos:       models.StringList(req.Videos),
		Description:  req.Description,
		Sold:         req.Sold,
		MediaOrdered: models.StringList(req.MediaOrdered),
	}
	if vehicle.Images == nil {
		vehicle.Images = models.StringList{}
	}
	if vehicle.Videos == nil {
		vehicle.Videos = models.StringList{}
	}

	// created_at stays untouched on conflict so the newest-created ordering
	// refers to first insertion, not the latest re-save.
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"brand", "model", "year", "price_usd", "thumbnail",
			"images", "videos", "description", "sold", "media_ordered", "updated_at",
		}),
	}).Create(&vehicle).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save vehicle"})
		return
	}

	var saved models.Vehicle
	if err := database.DB.Where("slug = ?", req.Slug).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved vehicle"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
