package models

import (
	"time"

	"github.com/zoramarket/zora-backend/pkg/types"
)

// Cart holds the single mutable cart per user. The items column is the
// whole stored list; every write rewrites it (document-style semantics,
// last writer wins at the row level).
type Cart struct {
	ID        string          `gorm:"column:id;primaryKey" json:"id"`
	UserID    string          `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Items     types.CartLines `gorm:"column:items;type:jsonb;serializer:json;not null;default:'[]'" json:"items"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
