package testimonial

import (
	"context"

	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type Repository interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}
