package credential

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cost  int
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
		cost:  bcrypt.DefaultCost,
	}
}

// Execute stores a new account. The email is kept exactly as given, so
// lookups are case-sensitive.
func (uc *Register) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	if email == "" || password == "" {
		return nil, httperr.ErrValidation(MsgMissingFields)
	}

	existing, err := uc.repo.FindUserByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, httperr.ErrConflict(msgEmailTaken)
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.ErrConflict(msgEmailTaken)
		}
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
