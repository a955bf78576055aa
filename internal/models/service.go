package models

// Service rows are seeded outside the API and only ever read by it.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
}
