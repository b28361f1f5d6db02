package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// fakeUserStore is an in-memory UserStorage for tests.
type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) CreateUser(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetUserByID(id string) (*models.User, error) {
	return s.users[id], nil
}

func TestPasswordAuthenticator_RegisterAndAuthenticate(t *testing.T) {
	authenticator := NewPasswordAuthenticator(newFakeUserStore())

	user, err := authenticator.Register("ana@example.com", "Ana", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	authed, err := authenticator.Authenticate("ana@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = authenticator.Authenticate("ana@example.com", "wrong password")
	assert.Error(t, err)
}

func TestPasswordAuthenticator_RejectsShortPasswordAndDuplicateEmail(t *testing.T) {
	authenticator := NewPasswordAuthenticator(newFakeUserStore())

	_, err := authenticator.Register("ana@example.com", "Ana", "short")
	assert.Error(t, err)

	_, err = authenticator.Register("ana@example.com", "Ana", "correct horse")
	assert.NoError(t, err)

	_, err = authenticator.Register("ana@example.com", "Ana Again", "battery staple")
	assert.Error(t, err)
}

func TestPasswordAuthenticator_CurrentUser(t *testing.T) {
	authenticator := NewPasswordAuthenticator(newFakeUserStore())

	user, err := authenticator.Register("ben@example.com", "Ben", "battery staple")
	assert.NoError(t, err)

	found, err := authenticator.CurrentUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ben@example.com", found.Email)

	_, err = authenticator.CurrentUser("missing")
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
