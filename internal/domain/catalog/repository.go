package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

var ErrServiceNotFound = errors.New("catalog: service not found")

// Repository reads the service catalog. Results come back in store-native
// order; nothing here sorts.
type Repository interface {
	ListServices(ctx context.Context) ([]models.Service, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	// SearchServices matches term as a substring of name or description.
	// Case sensitivity is whatever the store's LIKE does.
	SearchServices(ctx context.Context, term string) ([]models.Service, error)
}

// LikePattern wraps term for a substring LIKE match. Wildcards inside term
// are passed through.
func LikePattern(term string) string {
	return "%" + term + "%"
}
