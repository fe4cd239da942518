package models

import (
	"time"

	"github.com/zoramarket/zora-backend/pkg/enums"
)

// User represents the canonical identity entity. Accounts are created on
// first successful session exchange and never hard-deleted.
type User struct {
	ID                string               `gorm:"column:id;primaryKey" json:"user_id"`
	Email             string               `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Name              string               `gorm:"column:name;not null" json:"name"`
	Picture           *string              `gorm:"column:picture" json:"picture,omitempty"`
	Phone             *string              `gorm:"column:phone" json:"phone,omitempty"`
	MembershipTier    enums.MembershipTier `gorm:"column:membership_tier;not null;default:'bronze'" json:"membership_tier"`
	ZoraCredits       float64              `gorm:"column:zora_credits;not null;default:0" json:"zora_credits"`
	LoyaltyPoints     int                  `gorm:"column:loyalty_points;not null;default:0" json:"loyalty_points"`
	ReferralCode      *string              `gorm:"column:referral_code" json:"referral_code,omitempty"`
	CulturalInterests []string             `gorm:"column:cultural_interests;type:jsonb;serializer:json;not null;default:'[]'" json:"cultural_interests"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
