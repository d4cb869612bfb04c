package main

import (
	"errors"
	"html/template"
	"log"
	"time"

	"github.com/lucianobritez019-dotcom/autos-clasicos/config"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/datasource"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/handler"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"
	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/uploader"
	"github.com/lucianobritez019-dotcom/autos-clasicos/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")

	err := database.DB.AutoMigrate(
		&models.Settings{},
		&models.Vehicle{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 4. Cloudinary uploader (nil when unconfigured; the admin page then
	// shows the configuration notice instead of upload buttons)
	up, err := uploader.NewCloudinary(config.AppConfig.Cloudinary)
	if err != nil {
		if errors.Is(err, uploader.ErrNotConfigured) {
			log.Println("Warning: Cloudinary not configured, uploads disabled")
		} else {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
	}

	// 5. Read façade with injected fallback seed
	ds := datasource.New(
		config.AppConfig.Server.BaseURL,
		datasource.Defaults{
			HeroImageURL:   config.AppConfig.Site.DefaultHeroURL,
			WhatsappNumber: config.AppConfig.Site.WhatsappNumber,
			SiteTitle:      config.AppConfig.Site.Title,
			LogoURL:        config.AppConfig.Site.DefaultLogoURL,
		},
		datasource.FallbackVehicles(),
	)

	// 6. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetFuncMap(template.FuncMap{
		"formatPrice": models.FormatPriceUSD,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	// 7. Setup Routes
	settingsHandler := &handler.SettingsHandler{}
	vehicleHandler := &handler.VehicleHandler{}
	uploadHandler := &handler.UploadHandler{}
	if up != nil {
		uploadHandler.Uploader = up
	}

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/settings", settingsHandler.GetSettings)
		apiRoutes.POST("/settings", settingsHandler.SaveSettings)
		apiRoutes.GET("/vehicles", vehicleHandler.ListVehicles)
		apiRoutes.POST("/vehicles", vehicleHandler.SaveVehicle)
		apiRoutes.POST("/upload", uploadHandler.UploadMedia)
		apiRoutes.GET("/upload/config", uploadHandler.Configured)
	}

	pageHandler := &handler.PageHandler{
		Data:             ds,
		Site:             config.AppConfig.Site,
		UploadConfigured: up != nil,
	}
	r.GET("/", pageHandler.Home)
	r.GET("/vehiculo/:slug", pageHandler.VehicleDetail)
	r.GET("/admin", pageHandler.Admin)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 8. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
