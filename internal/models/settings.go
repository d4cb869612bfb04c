package models

import "time"

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

// Settings is the site-wide configuration edited from the admin page. There
// is exactly one logical row (id = SettingsID) after the first save; every
// save replaces all four fields.
type Settings struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	HeroImageURL   string    `gorm:"column:hero_image_url;size:500;not null" json:"heroImageUrl"`
	WhatsappNumber string    `gorm:"size:30" json:"whatsappNumber"`
	SiteTitle      string    `gorm:"size:150" json:"siteTitle"`
	LogoURL        string    `gorm:"column:logo_url;size:500" json:"logoUrl"`
	UpdatedAt      time.Time `json:"-"`
}
