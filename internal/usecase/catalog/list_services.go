package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

const (
	MsgServiceNotFound = "Service not found"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}
	return services, nil
}
