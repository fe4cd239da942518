package models

// Banner is a promotional tile on the home surface.
type Banner struct {
	ID       string  `gorm:"column:id;primaryKey" json:"id"`
	Title    string  `gorm:"column:title;not null" json:"title"`
	Subtitle string  `gorm:"column:subtitle;not null;default:''" json:"subtitle"`
	ImageURL string  `gorm:"column:image_url;not null;default:''" json:"image_url"`
	CTAText  string  `gorm:"column:cta_text;not null;default:''" json:"cta_text"`
	CTALink  string  `gorm:"column:cta_link;not null;default:''" json:"cta_link"`
	Badge    *string `gorm:"column:badge" json:"badge,omitempty"`
}

// Region is a browsable catalog region (e.g. "west-africa").
type Region struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	ImageURL    string  `gorm:"column:image_url;not null;default:''" json:"image_url"`
	Description *string `gorm:"column:description" json:"description,omitempty"`
}
