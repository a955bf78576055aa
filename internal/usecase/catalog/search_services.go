package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type SearchServices struct {
	repo domain.Repository
}

func NewSearchServices(repo domain.Repository) *SearchServices {
	return &SearchServices{repo: repo}
}

// Execute returns an empty result for an empty term without touching the
// repository.
func (uc *SearchServices) Execute(ctx context.Context, term string) ([]models.Service, error) {
	if term == "" {
		return []models.Service{}, nil
	}

	services, err := uc.repo.SearchServices(ctx, term)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}
	return services, nil
}
