package catalog

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := uc.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, httperr.ErrNotFound(MsgServiceNotFound)
		}
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}
	return svc, nil
}
