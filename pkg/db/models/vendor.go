package models

import (
	"github.com/lib/pq"

	"github.com/zoramarket/zora-backend/pkg/types"
)

// Vendor is a top-level marketplace seller. Rating and review_count are
// derived columns maintained by the review aggregator.
type Vendor struct {
	ID           string               `gorm:"column:id;primaryKey" json:"id"`
	Name         string               `gorm:"column:name;not null" json:"name"`
	Description  string               `gorm:"column:description;not null;default:''" json:"description"`
	CoverImage   string               `gorm:"column:cover_image;not null;default:''" json:"cover_image"`
	LogoURL      string               `gorm:"column:logo_url;not null;default:''" json:"logo_url"`
	Category     string               `gorm:"column:category;not null;default:''" json:"category"`
	Regions      pq.StringArray       `gorm:"column:regions;type:text[];not null" json:"regions"`
	Rating       float64              `gorm:"column:rating;not null;default:4.5" json:"rating"`
	ReviewCount  int                  `gorm:"column:review_count;not null;default:0" json:"review_count"`
	IsVerified   bool                 `gorm:"column:is_verified;not null;default:true" json:"is_verified"`
	Tag          *string              `gorm:"column:tag" json:"tag,omitempty"`
	Distance     *string              `gorm:"column:distance" json:"distance,omitempty"`
	DeliveryTime string               `gorm:"column:delivery_time;not null;default:'20-30 min'" json:"delivery_time"`
	DeliveryFee  float64              `gorm:"column:delivery_fee;not null;default:2.99" json:"delivery_fee"`
	MinOrder     float64              `gorm:"column:min_order;not null;default:10" json:"min_order"`
	Address      *string              `gorm:"column:address" json:"address,omitempty"`
	OpeningHours []types.OpeningHours `gorm:"column:opening_hours;type:jsonb;serializer:json;not null;default:'[]'" json:"opening_hours"`
	IsOpen       bool                 `gorm:"column:is_open;not null;default:true" json:"is_open"`
}
