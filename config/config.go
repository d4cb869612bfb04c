package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cloudinary CloudinaryConfig
	Site       SiteConfig
}

type ServerConfig struct {
	Port    string
	Env     string
	BaseURL string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Folder       string
}

// SiteConfig holds the storefront defaults applied when the settings row is
// missing or partially filled.
type SiteConfig struct {
	Title            string   `mapstructure:"title"`
	WhatsappNumber   string   `mapstructure:"whatsapp_number"`
	DefaultHeroURL   string   `mapstructure:"default_hero_url"`
	DefaultLogoURL   string   `mapstructure:"default_logo_url"`
	CuratedHeroURLs  []string `mapstructure:"curated_hero_urls"`
	RotationInterval int      `mapstructure:"rotation_interval_seconds"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CLOUDINARY_FOLDER", "autos-clasicos")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:    viper.GetString("SERVER_PORT"),
			Env:     viper.GetString("SERVER_ENV"),
			BaseURL: viper.GetString("SERVER_BASE_URL"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:    viper.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:       viper.GetString("CLOUDINARY_API_KEY"),
			APISecret:    viper.GetString("CLOUDINARY_API_SECRET"),
			UploadPreset: viper.GetString("CLOUDINARY_UPLOAD_PRESET"),
			Folder:       viper.GetString("CLOUDINARY_FOLDER"),
		},
	}

	if AppConfig.Server.BaseURL == "" {
		// The page handlers read through the app's own JSON API.
		AppConfig.Server.BaseURL = fmt.Sprintf("http://127.0.0.1:%s", AppConfig.Server.Port)
	}

	// Load TOML Config for Site Defaults
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: config/config.toml not found, using built-in site defaults: %v", err)
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site defaults from TOML: %v", err)
		}
	}
	ApplySiteDefaults(&AppConfig.Site)

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Base URL: %s", AppConfig.Server.BaseURL)
	log.Printf("- Database Driver: %s", AppConfig.Database.Driver)
	log.Printf("- Database Host: %s", AppConfig.Database.Host)
	log.Printf("- Database Name: %s", AppConfig.Database.Name)
	log.Printf("- Database URL: %s", func() string {
		if AppConfig.Database.URL != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Cloudinary: %s", func() string {
		if AppConfig.Cloudinary.CloudName != "" && AppConfig.Cloudinary.UploadPreset != "" {
			return "CONFIGURED"
		}
		return "NOT CONFIGURED"
	}())
	log.Printf("- Site Title: %s", AppConfig.Site.Title)
}

// ApplySiteDefaults fills empty fields with the built-in storefront defaults
// so the site renders even without config/config.toml.
func ApplySiteDefaults(s *SiteConfig) {
	if s.Title == "" {
		s.Title = "Clásicos Seleccionados"
	}
	if s.WhatsappNumber == "" {
		s.WhatsappNumber = "595981446666"
	}
	if s.DefaultHeroURL == "" {
		s.DefaultHeroURL = "https://drive.google.com/uc?export=view&id=1tDkxlL3zCe11IHC6bTpB1g6YT6YDRZYY"
	}
	if s.DefaultLogoURL == "" {
		s.DefaultLogoURL = "https://drive.google.com/uc?export=view&id=1tVxlFdtyaG7bmju641X-FvN-_b46wJvm"
	}
	if len(s.CuratedHeroURLs) == 0 {
		s.CuratedHeroURLs = []string{
			"https://images.unsplash.com/photo-1453856908826-6bbeda0f8490?auto=format&fit=crop&q=80&w=2400",
			"https://images.unsplash.com/photo-1604940500627-d3f44d1d21c6?auto=format&fit=crop&q=80&w=2400",
			"https://images.unsplash.com/photo-1595784777383-7e427035a15d?auto=format&fit=crop&q=80&w=2400",
		}
	}
	if s.RotationInterval <= 0 {
		s.RotationInterval = 5
	}
}
