package models

import (
	"time"

	"github.com/zoramarket/zora-backend/pkg/enums"
	"github.com/zoramarket/zora-backend/pkg/types"
)

// Order is an immutable snapshot of purchased items plus the totals
// computed at creation time. Only status, payment_intent_id and the
// delivery timestamps change after insert.
type Order struct {
	ID                string                 `gorm:"column:id;primaryKey" json:"id"`
	UserID            string                 `gorm:"column:user_id;not null;index" json:"user_id"`
	OrderNumber       string                 `gorm:"column:order_number;not null;uniqueIndex" json:"order_number"`
	Status            enums.OrderStatus      `gorm:"column:status;not null;default:'pending'" json:"status"`
	Items             types.OrderItems       `gorm:"column:items;type:jsonb;serializer:json;not null;default:'[]'" json:"items"`
	Subtotal          float64                `gorm:"column:subtotal;not null;default:0" json:"subtotal"`
	DeliveryFee       float64                `gorm:"column:delivery_fee;not null;default:0" json:"delivery_fee"`
	ServiceFee        float64                `gorm:"column:service_fee;not null;default:0" json:"service_fee"`
	Discount          float64                `gorm:"column:discount;not null;default:0" json:"discount"`
	Total             float64                `gorm:"column:total;not null;default:0" json:"total"`
	Currency          string                 `gorm:"column:currency;not null;default:'GBP'" json:"currency"`
	DeliveryAddress   *types.DeliveryAddress `gorm:"column:delivery_address;type:jsonb;serializer:json" json:"delivery_address,omitempty"`
	DeliveryOption    string                 `gorm:"column:delivery_option;not null;default:'delivery'" json:"delivery_option"`
	PaymentMethod     string                 `gorm:"column:payment_method;not null;default:'card'" json:"payment_method"`
	PaymentIntentID   *string                `gorm:"column:payment_intent_id" json:"payment_intent_id,omitempty"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	EstimatedDelivery *time.Time             `gorm:"column:estimated_delivery" json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time             `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
}
