package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
)

func newRegister(repo *fakeRepo) *Register {
	uc := NewRegister(repo, nil)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	repo := &fakeRepo{}

	user, err := newRegister(repo).Execute(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, uint(1), user.ID)
	assert.NotEqual(t, "secret", repo.users[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].Password), []byte("secret")))
}

func TestRegister_MissingFields(t *testing.T) {
	uc := newRegister(&fakeRepo{})

	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"a@x.com", ""},
		{"", ""},
	} {
		_, err := uc.Execute(context.Background(), tc.email, tc.password)

		var ae *httperr.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, httperr.KindValidation, ae.Kind)
		assert.Equal(t, "Email and password are required", ae.Message)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRegister(repo)

	_, err := uc.Execute(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "a@x.com", "other")

	var ae *httperr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, httperr.KindConflict, ae.Kind)
	assert.Equal(t, "User with this email already exists", ae.Message)
	assert.Len(t, repo.users, 1)
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRegister(repo)

	_, err := uc.Execute(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), "A@x.com", "secret")
	require.NoError(t, err)

	assert.Len(t, repo.users, 2)
}

func TestRegister_InsertRaceIsConflict(t *testing.T) {
	repo := &fakeRepo{createErr: domain.ErrEmailTaken}

	_, err := newRegister(repo).Execute(context.Background(), "a@x.com", "secret")

	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestRegister_StoreFailureIsInternal(t *testing.T) {
	cause := errors.New("disk full")
	repo := &fakeRepo{createErr: cause}

	_, err := newRegister(repo).Execute(context.Background(), "a@x.com", "secret")

	var ae *httperr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, httperr.KindInternal, ae.Kind)
	assert.Equal(t, "A database error occurred.", ae.Message)
	assert.ErrorIs(t, err, cause)
}
