package credential

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

var (
	ErrUserNotFound = errors.New("credential: user not found")
	ErrEmailTaken   = errors.New("credential: email already registered")
)

type Repository interface {
	// FindUserByEmail matches the stored email exactly (case-sensitive).
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser returns ErrEmailTaken on a unique-key violation.
	CreateUser(ctx context.Context, user *models.User) error

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}
