package credential

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/service-on-wheel/internal/auth"
	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/metrics"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("service-on-wheel"), bcrypt.DefaultCost)
	return h
})

type LoginResult struct {
	User  *models.User
	Token string
}

type Login struct {
	repo   domain.Repository
	tokens *auth.Issuer
}

func NewLogin(
	repo domain.Repository,
	tokens *auth.Issuer,
) *Login {
	return &Login{
		repo:   repo,
		tokens: tokens,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	if email == "" || password == "" {
		return nil, httperr.ErrValidation(MsgMissingFields)
	}

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		metrics.Logins.WithLabelValues("failure").Inc()
		return nil, httperr.ErrAuth(msgInvalidLogin)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.Logins.WithLabelValues("failure").Inc()
		return nil, httperr.ErrAuth(msgInvalidLogin)
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, httperr.ErrInternal(httperr.MsgDatabaseFailure, err)
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return &LoginResult{User: user, Token: token}, nil
}
