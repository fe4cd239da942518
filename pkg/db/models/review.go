package models

import "time"

// Review references exactly one of product or vendor in the usual case.
// When both ids are set the aggregator recomputes both subjects
// independently.
type Review struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null" json:"user_id"`
	UserName    string    `gorm:"column:user_name;not null" json:"user_name"`
	UserPicture *string   `gorm:"column:user_picture" json:"user_picture,omitempty"`
	ProductID   *string   `gorm:"column:product_id;index" json:"product_id,omitempty"`
	VendorID    *string   `gorm:"column:vendor_id;index" json:"vendor_id,omitempty"`
	Rating      int       `gorm:"column:rating;not null" json:"rating"`
	Comment     string    `gorm:"column:comment;not null;default:''" json:"comment"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
