package models

type Testimonial struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Location     string `gorm:"size:100" json:"location"`
	Content      string `gorm:"type:text;not null" json:"content"`
	Rating       int    `json:"rating"`
}
