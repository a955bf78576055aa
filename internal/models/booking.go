package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// No foreign key: bookings may reference users that do not exist.
	UserID uint `gorm:"index;not null" json:"user_id"`

	ServiceID uint `gorm:"index;not null" json:"service_id"`

	// Snapshot of Service.Name at booking time; never re-synced.
	ServiceName string `gorm:"size:100;not null" json:"service_name"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	Address       string `gorm:"size:255;not null" json:"address"`
	BookingDate   string `gorm:"size:20;not null" json:"booking_date"`
	BookingTime   string `gorm:"size:20;not null" json:"booking_time"`
	PaymentMethod string `gorm:"size:50;not null" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
}
