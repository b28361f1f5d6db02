package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// UserStorage defines the persistence operations the authenticator needs,
// keeping it independent of the storage implementation.
type UserStorage interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: storage}
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(email, displayName, password string) (*models.User, error) {
	if len(password) < 8 {
		return nil, utils.NewValidationError("password must be at least 8 characters")
	}

	existing, err := a.storage.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(utils.GenerateID(), email, displayName, string(hashed))
	if err := a.storage.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser looks up the account behind an owner key.
func (a *PasswordAuthenticator) CurrentUser(id string) (*models.User, error) {
	user, err := a.storage.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User")
	}
	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(email, password string) (*models.User, error) {
	user, err := a.storage.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewUnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}
