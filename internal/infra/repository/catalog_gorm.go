package repository

import (
	"context"

	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type CatalogGormRepository struct {
	h db.Handle
}

func NewCatalogGormRepository(h db.Handle) *CatalogGormRepository {
	return &CatalogGormRepository{h: h}
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var services []models.Service
	if err := conn.WithContext(ctx).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var svc models.Service
	if err := conn.WithContext(ctx).First(&svc, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) SearchServices(ctx context.Context, term string) ([]models.Service, error) {
	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	like := domain.LikePattern(term)

	var services []models.Service
	if err := conn.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", like, like).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

var _ domain.Repository = (*CatalogGormRepository)(nil)
