package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/booking"
	"github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/metrics"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

const (
	MsgMissingFields  = "Missing required booking information"
	MsgInvalidService = "Invalid service ID"
)

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute resolves the service and inserts the booking in one transaction,
// so the name snapshot and the row it came from cannot diverge.
// The user id is recorded as given.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.Draft,
) (*models.Booking, error) {

	if !in.Complete() {
		metrics.BookingsCreated.WithLabelValues("invalid").Inc()
		return nil, httperr.ErrValidation(MsgMissingFields)
	}
	if in.ServiceIDUnreadable {
		metrics.BookingsCreated.WithLabelValues("invalid").Inc()
		return nil, httperr.ErrValidation(MsgInvalidService)
	}

	var created *models.Booking
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		svc, err := tx.LockService(ctx, *in.ServiceID)
		if err != nil {
			return err
		}

		b := domain.New(in, svc)
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})

	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		metrics.BookingsCreated.WithLabelValues("invalid").Inc()
		return nil, httperr.ErrValidation(MsgInvalidService)
	case err != nil:
		metrics.BookingsCreated.WithLabelValues("failed").Inc()
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}

	metrics.BookingsCreated.WithLabelValues("created").Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &created.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: *created,
	})

	return created, nil
}
