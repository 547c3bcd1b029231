package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/service/users/models"
	"github.com/m04kA/TurfBookingService/pkg/password"
	"github.com/m04kA/TurfBookingService/pkg/ptr"
)

type fakeRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeRepo(users ...*domain.User) *fakeRepo {
	f := &fakeRepo{users: map[int64]*domain.User{}}
	for _, u := range users {
		f.users[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Phone == u.Phone {
			return nil, userRepo.ErrDuplicateUser
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, _ *domain.Role) ([]*domain.User, error) {
	result := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeRepo) UpdateProfile(_ context.Context, id int64, name string, email *string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	for _, other := range f.users {
		if other.ID != id && email != nil && other.Email != nil && *other.Email == *email {
			return userRepo.ErrDuplicateUser
		}
	}
	u.Name = name
	u.Email = email
	return nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id int64, status domain.UserStatus) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestToggleStatus(t *testing.T) {
	repo := newFakeRepo(&domain.User{ID: 1, Name: "Ravi", Phone: "9876543210", Status: domain.UserActive})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ToggleStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "User blocked", resp.Message)
	assert.Equal(t, "BLOCKED", resp.User.Status)

	resp, err = svc.ToggleStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "User active", resp.Message)
	assert.Equal(t, domain.UserActive, repo.users[1].Status)

	_, err = svc.ToggleStatus(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateWatchman(t *testing.T) {
	repo := newFakeRepo(&domain.User{ID: 1, Phone: "9876543210"})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CreateWatchman(context.Background(), &models.CreateWatchmanRequest{
		Name:     " Gate Keeper ",
		Phone:    "9000000000",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gate Keeper", resp.Name)
	assert.Equal(t, "WATCHMAN", resp.Role)
	stored := repo.users[resp.ID]
	assert.NoError(t, password.Compare(stored.PasswordHash, "secret123"))

	_, err = svc.CreateWatchman(context.Background(), &models.CreateWatchmanRequest{
		Name: "Dup", Phone: "9876543210", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrAlreadyInUse)

	_, err = svc.CreateWatchman(context.Background(), &models.CreateWatchmanRequest{Name: "No Phone", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo(
		&domain.User{ID: 1, Name: "Ravi", Phone: "9876543210"},
		&domain.User{ID: 2, Name: "Asha", Phone: "9000000000", Email: ptr.Ptr("asha@example.com")},
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{
		Name:  "Ravi K",
		Email: ptr.Ptr("ravi@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", resp.Name)
	assert.Equal(t, "ravi@example.com", *resp.Email)
	assert.Equal(t, "9876543210", resp.Phone)

	_, err = svc.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{
		Name:  "Ravi",
		Email: ptr.Ptr("asha@example.com"),
	})
	assert.ErrorIs(t, err, ErrAlreadyInUse)

	_, err = svc.UpdateProfile(context.Background(), 1, &models.UpdateProfileRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList(t *testing.T) {
	svc := NewService(newFakeRepo(&domain.User{ID: 1, PasswordHash: "secret"}), nopLogger{})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}
