package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores an ordered list of URLs as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Vehicle is one catalog entry. Slug is the natural key: saving an existing
// slug overwrites the whole record.
type Vehicle struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	Slug        string     `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Brand       string     `gorm:"size:100;not null" json:"brand"`
	Model       string     `gorm:"size:150;not null" json:"model"`
	Year        int        `gorm:"not null" json:"year"`
	PriceUSD    float64    `gorm:"column:price_usd;type:decimal(12,2);not null" json:"priceUsd"`
	Thumbnail   string     `gorm:"size:500;not null" json:"thumbnail"`
	Images      StringList `gorm:"type:json" json:"images"`
	Videos      StringList `gorm:"type:json" json:"videos"`
	Description string     `gorm:"type:text" json:"description"`
	Sold        bool       `gorm:"default:false" json:"sold"`
	// MediaOrdered is an optional curated interleaving of images and videos
	// that overrides the default images-then-videos display order.
	MediaOrdered StringList `gorm:"column:media_ordered;type:json" json:"mediaOrdered"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}
