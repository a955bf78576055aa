package booking

import (
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

// Draft is a booking request before the service is resolved. Ids are
// pointers so that an absent id can be told apart from zero.
type Draft struct {
	UserID    *uint
	ServiceID *uint

	// ServiceIDUnreadable is set when a service id was sent but is not a
	// number. ServiceID is then non-nil and zero.
	ServiceIDUnreadable bool

	CustomerName  string
	Address       string
	BookingDate   string
	BookingTime   string
	PaymentMethod string
}

// Complete reports whether every field is present. Zero ids and
// whitespace-only strings count as present; empty strings do not.
func (d Draft) Complete() bool {
	if d.UserID == nil || d.ServiceID == nil {
		return false
	}
	for _, s := range []string{d.CustomerName, d.Address, d.BookingDate, d.BookingTime, d.PaymentMethod} {
		if s == "" {
			return false
		}
	}
	return true
}

// New builds the row to persist, copying the service name as it is now.
func New(d Draft, svc *models.Service) *models.Booking {
	return &models.Booking{
		UserID:        *d.UserID,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		CustomerName:  d.CustomerName,
		Address:       d.Address,
		BookingDate:   d.BookingDate,
		BookingTime:   d.BookingTime,
		PaymentMethod: d.PaymentMethod,
	}
}
