package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users map[string]User
}

func (f *fakeRepo) Create(_ context.Context, user User) error {
	if _, ok := f.users[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := f.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(_ context.Context, user User) (string, error) {
	return "token-" + user.Email, nil
}

func newTestService() UseCase {
	return NewService(&fakeRepo{users: make(map[string]User)}, fakeTokens{})
}

func TestRegisterHashesPasswordAndLowercasesEmail(t *testing.T) {
	svc := newTestService()

	res, err := svc.Register(context.Background(), "  User@Example.COM ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", res.User.Email)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)
	assert.Equal(t, "token-user@example.com", res.Token)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "USER@example.com", "another")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "User@Example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "user@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
