package models

import (
	"github.com/lib/pq"

	"github.com/zoramarket/zora-backend/pkg/types"
)

// Product belongs to exactly one vendor. Rating and review_count are
// derived columns maintained by the review aggregator; price is the
// authoritative server-side price used for all order math.
type Product struct {
	ID             string               `gorm:"column:id;primaryKey" json:"id"`
	VendorID       string               `gorm:"column:vendor_id;not null;index" json:"vendor_id"`
	Name           string               `gorm:"column:name;not null" json:"name"`
	Description    string               `gorm:"column:description;not null;default:''" json:"description"`
	Price          float64              `gorm:"column:price;not null" json:"price"`
	OriginalPrice  *float64             `gorm:"column:original_price" json:"original_price,omitempty"`
	Currency       string               `gorm:"column:currency;not null;default:'GBP'" json:"currency"`
	ImageURL       string               `gorm:"column:image_url;not null;default:''" json:"image_url"`
	Images         pq.StringArray       `gorm:"column:images;type:text[];not null" json:"images"`
	Category       string               `gorm:"column:category;not null;default:''" json:"category"`
	Subcategory    *string              `gorm:"column:subcategory" json:"subcategory,omitempty"`
	Region         string               `gorm:"column:region;not null;default:''" json:"region"`
	Weight         *string              `gorm:"column:weight" json:"weight,omitempty"`
	Unit           *string              `gorm:"column:unit" json:"unit,omitempty"`
	Badge          *string              `gorm:"column:badge" json:"badge,omitempty"`
	Rating         float64              `gorm:"column:rating;not null;default:4.5" json:"rating"`
	ReviewCount    int                  `gorm:"column:review_count;not null;default:0" json:"review_count"`
	InStock        bool                 `gorm:"column:in_stock;not null;default:true" json:"in_stock"`
	StockQuantity  int                  `gorm:"column:stock_quantity;not null;default:100" json:"stock_quantity"`
	Attributes     map[string]string    `gorm:"column:attributes;type:jsonb;serializer:json;not null;default:'{}'" json:"attributes"`
	NutritionInfo  *types.NutritionInfo `gorm:"column:nutrition_info;type:jsonb;serializer:json" json:"nutrition_info,omitempty"`
	Origin         *string              `gorm:"column:origin" json:"origin,omitempty"`
	Certifications pq.StringArray       `gorm:"column:certifications;type:text[];not null" json:"certifications"`
}
