package repository

import (
	"context"

	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type UserGormRepository struct {
	h db.Handle
}

func NewUserGormRepository(h db.Handle) *UserGormRepository {
	return &UserGormRepository{h: h}
}

func (r *UserGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := conn.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if db.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	conn, err := r.h.DB()
	if err != nil {
		return err
	}

	if err := conn.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	conn, err := r.h.DB()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := conn.WithContext(ctx).First(&user, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
