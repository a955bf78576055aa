package credential

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

type fakeRepo struct {
	mu        sync.Mutex
	users     []models.User
	findErr   error
	createErr error
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
