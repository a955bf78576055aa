package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/booking"
	"github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type BookingGormRepository struct {
	h db.Handle
}

func NewBookingGormRepository(h db.Handle) *BookingGormRepository {
	return &BookingGormRepository{h: h}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {

	conn, err := r.h.DB()
	if err != nil {
		return err
	}

	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingGormRepository(db.Static(tx)))
	})
}

// --------------------------------------------------
// Service lookup
// --------------------------------------------------

func (r *BookingGormRepository) LockService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	// sqlite ignores the locking clause; a transaction there already
	// serialises writers.
	var svc models.Service
	if err := conn.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id", "name").
		First(&svc, serviceID).Error; err != nil {

		if db.IsNotFound(err) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	conn, err := r.h.DB()
	if err != nil {
		return err
	}
	return conn.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
