package handler

import (
	"net/http"

	"github.com/lucianobritez019-dotcom/autos-clasicos/config"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/datasource"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/media"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// PageHandler renders the storefront and admin pages on top of the read
// façade.
type PageHandler struct {
	Data             *datasource.Datasource
	Site             config.SiteConfig
	UploadConfigured bool
}

// GalleryItem is the per-entry view model for the detail page gallery.
type GalleryItem struct {
	Type    media.Type
	Src     string
	Embed   string
	YouTube bool
}

// Home renders the hero plus the available/sold grids. The three reads are
// independent, so they are issued concurrently and joined before rendering;
// sequential execution would produce the same page.
func (h *PageHandler) Home(c *gin.Context) {
	var (
		settings models.Settings
		vehicles []models.Vehicle
		hasWA    bool
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		settings = h.Data.GetSettings(ctx)
		return nil
	})
	g.Go(func() error {
		vehicles = h.Data.GetVehicles(ctx)
		return nil
	})
	g.Go(func() error {
		hasWA = h.Data.HasWhatsAppNumber(ctx)
		return nil
	})
	_ = g.Wait() // façade reads are total, no error to collect

	var available, sold []models.Vehicle
	for _, v := range vehicles {
		if v.Sold {
			sold = append(sold, v)
		} else {
			available = append(available, v)
		}
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"SiteTitle":      settings.SiteTitle,
		"LogoURL":        settings.LogoURL,
		"HeroImages":     media.HeroImages(settings.HeroImageURL, h.Site.CuratedHeroURLs),
		"RotationMillis": h.Site.RotationInterval * 1000,
		"HasWhatsApp":    hasWA,
		"Available":      available,
		"Sold":           sold,
	})
}

// VehicleDetail renders one vehicle's page, or the not-found page when the
// slug matches nothing.
func (h *PageHandler) VehicleDetail(c *gin.Context) {
	ctx := c.Request.Context()

	v, ok := h.Data.GetVehicleBySlug(ctx, c.Param("slug"))
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"SiteTitle": h.Site.Title,
		})
		return
	}

	// The thumbnail stands in as the gallery image when no images were
	// uploaded.
	images := []string(v.Images)
	if len(images) == 0 {
		images = []string{v.Thumbnail}
	}

	items := media.Merge(images, v.Videos, v.MediaOrdered)
	gallery := make([]GalleryItem, 0, len(items))
	for _, it := range items {
		gi := GalleryItem{Type: it.Type, Src: it.Src}
		if it.Type == media.TypeVideo && media.IsYouTube(it.Src) {
			gi.YouTube = true
			gi.Embed = media.YouTubeEmbed(it.Src)
		}
		gallery = append(gallery, gi)
	}

	c.HTML(http.StatusOK, "vehicle.html", gin.H{
		"SiteTitle":    h.Site.Title,
		"Vehicle":      v,
		"Gallery":      gallery,
		"WhatsAppLink": h.Data.BuildWhatsAppLink(ctx, v),
	})
}

// Admin renders the settings/vehicle editor. The page itself is static; all
// data flows through the JSON API from inline scripts.
func (h *PageHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"SiteTitle":        h.Site.Title,
		"UploadConfigured": h.UploadConfigured,
	})
}
