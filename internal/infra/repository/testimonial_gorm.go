package repository

import (
	"context"

	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/testimonial"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type TestimonialGormRepository struct {
	h db.Handle
}

func NewTestimonialGormRepository(h db.Handle) *TestimonialGormRepository {
	return &TestimonialGormRepository{h: h}
}

func (r *TestimonialGormRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var rows []models.Testimonial
	if err := conn.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var _ domain.Repository = (*TestimonialGormRepository)(nil)
