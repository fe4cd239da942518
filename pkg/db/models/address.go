package models

// Address is a user-owned delivery address. The is_default flag is stored
// as provided; nothing demotes other defaults when a new one is set.
type Address struct {
	ID           string  `gorm:"column:id;primaryKey" json:"id"`
	UserID       string  `gorm:"column:user_id;not null;index" json:"user_id"`
	Label        string  `gorm:"column:label;not null;default:'Home'" json:"label"`
	Line1        string  `gorm:"column:line1;not null" json:"line1"`
	Line2        *string `gorm:"column:line2" json:"line2,omitempty"`
	City         string  `gorm:"column:city;not null" json:"city"`
	Postcode     string  `gorm:"column:postcode;not null" json:"postcode"`
	Country      string  `gorm:"column:country;not null;default:'United Kingdom'" json:"country"`
	IsDefault    bool    `gorm:"column:is_default;not null;default:false" json:"is_default"`
	Instructions *string `gorm:"column:instructions" json:"instructions,omitempty"`
}
