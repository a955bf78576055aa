package testimonial

import (
	"context"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/testimonial"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type ListTestimonials struct {
	repo domain.Repository
}

func NewListTestimonials(repo domain.Repository) *ListTestimonials {
	return &ListTestimonials{repo: repo}
}

func (uc *ListTestimonials) Execute(ctx context.Context) ([]models.Testimonial, error) {
	items, err := uc.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}
	return items, nil
}
