package booking

import (
	"context"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/booking"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type ListBookingsForUser struct {
	repo domain.Repository
}

func NewListBookingsForUser(repo domain.Repository) *ListBookingsForUser {
	return &ListBookingsForUser{repo: repo}
}

// Execute returns the user's bookings, newest first.
func (uc *ListBookingsForUser) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}
	return bookings, nil
}
