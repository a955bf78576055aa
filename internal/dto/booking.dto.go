package dto

import (
	"time"

	"github.com/BruksfildServices01/service-on-wheel/internal/domain/booking"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

// CreateBookingRequest keeps ids as pointers so that an omitted id is not
// confused with 0.
type CreateBookingRequest struct {
	UserID        *LooseID `json:"user_id" binding:"required"`
	ServiceID     *LooseID `json:"service_id" binding:"required"`
	CustomerName  string   `json:"customer_name" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	BookingDate   string   `json:"booking_date" binding:"required"`
	BookingTime   string   `json:"booking_time" binding:"required"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
}

// Draft converts the request for the booking use case. A user id that is
// not a number counts as missing. A service id that is not a number is
// kept as present but unreadable, and later fails as an unknown service.
func (r CreateBookingRequest) Draft() booking.Draft {
	d := booking.Draft{
		CustomerName:  r.CustomerName,
		Address:       r.Address,
		BookingDate:   r.BookingDate,
		BookingTime:   r.BookingTime,
		PaymentMethod: r.PaymentMethod,
	}

	if v, present, ok := r.UserID.Value(); present && ok {
		d.UserID = &v
	}
	if v, present, ok := r.ServiceID.Value(); present {
		d.ServiceID = &v
		d.ServiceIDUnreadable = !ok
	}
	return d
}

type BookingDetailsDTO struct {
	ServiceName   string `json:"service_name"`
	CustomerName  string `json:"customer_name"`
	Address       string `json:"address"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	PaymentMethod string `json:"payment_method"`
}

type CreateBookingResponse struct {
	Message        string            `json:"message"`
	BookingID      uint              `json:"booking_id"`
	BookingDetails BookingDetailsDTO `json:"booking_details"`
}

func NewCreateBookingResponse(b *models.Booking) CreateBookingResponse {
	return CreateBookingResponse{
		Message:   "Booking created successfully",
		BookingID: b.ID,
		BookingDetails: BookingDetailsDTO{
			ServiceName:   b.ServiceName,
			CustomerName:  b.CustomerName,
			Address:       b.Address,
			BookingDate:   b.BookingDate,
			BookingTime:   b.BookingTime,
			PaymentMethod: b.PaymentMethod,
		},
	}
}

type BookingListDTO struct {
	ID            uint      `json:"id"`
	ServiceID     uint      `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	CustomerName  string    `json:"customer_name"`
	Address       string    `json:"address"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingListDTO{
			ID:            b.ID,
			ServiceID:     b.ServiceID,
			ServiceName:   b.ServiceName,
			CustomerName:  b.CustomerName,
			Address:       b.Address,
			BookingDate:   b.BookingDate,
			BookingTime:   b.BookingTime,
			PaymentMethod: b.PaymentMethod,
			CreatedAt:     b.CreatedAt,
		})
	}
	return out
}
