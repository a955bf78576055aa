package booking

import (
	"context"

	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type Repository interface {
	// WithinTx runs fn against a repository bound to a single transaction.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// LockService loads the service and holds a shared lock on its row until
	// the surrounding transaction ends. Returns catalog.ErrServiceNotFound.
	LockService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
