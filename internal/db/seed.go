package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

var demoServices = []models.Service{
	{Name: "Home Deep Cleaning", Description: "Full-house cleaning including kitchen and bathrooms.", Category: "cleaning", Price: 79.0},
	{Name: "Sofa Shampooing", Description: "Steam clean and shampoo for fabric sofas.", Category: "cleaning", Price: 45.0},
	{Name: "AC Repair", Description: "Diagnosis and repair of split and window air conditioners.", Category: "appliance", Price: 60.0},
	{Name: "Plumbing", Description: "Leak fixes, tap and pipe replacement.", Category: "repair", Price: 35.0},
	{Name: "Electrician", Description: "Wiring, switchboard and fixture installation.", Category: "repair", Price: 40.0},
	{Name: "Pest Control", Description: "Odourless treatment for cockroaches, ants and termites.", Category: "cleaning", Price: 55.0},
}

var demoTestimonials = []models.Testimonial{
	{CustomerName: "Priya S.", Location: "Bengaluru", Content: "The deep cleaning team was on time and thorough.", Rating: 5},
	{CustomerName: "Rahul M.", Location: "Pune", Content: "AC works like new. Fair price.", Rating: 4},
	{CustomerName: "Anita K.", Location: "Mumbai", Content: "Booking took two minutes, the plumber arrived the same day.", Rating: 5},
}

// Seed fills the catalog and testimonials when their tables are empty. It
// reports how many rows were inserted.
func Seed(db *gorm.DB) (int, error) {
	inserted := 0

	n, err := seedIfEmpty(db, &models.Service{}, demoServices)
	if err != nil {
		return inserted, fmt.Errorf("db: seed services: %w", err)
	}
	inserted += n

	n, err = seedIfEmpty(db, &models.Testimonial{}, demoTestimonials)
	if err != nil {
		return inserted, fmt.Errorf("db: seed testimonials: %w", err)
	}
	inserted += n

	return inserted, nil
}

func seedIfEmpty[T any](db *gorm.DB, model *T, rows []T) (int, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	batch := make([]T, len(rows))
	copy(batch, rows)
	if err := db.Create(&batch).Error; err != nil {
		return 0, err
	}
	return len(batch), nil
}
