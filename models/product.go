package models

import "time"

type Badge string

const (
	BadgeNone       Badge = ""
	BadgeNew        Badge = "NEW"
	BadgeBestseller Badge = "BESTSELLER"
)

type Product struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `gorm:"not null;index" json:"category"`
	Images        []string `gorm:"serializer:json" json:"images"`
	Badge         Badge    `gorm:"type:VARCHAR(20);default:''" json:"badge"`
	Rating        float64  `json:"rating"` // 0-5, recomputed from reviews
	Colors        []string `gorm:"serializer:json" json:"colors"`
	Sizes         []string `gorm:"serializer:json" json:"sizes"`
	Description   string   `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
