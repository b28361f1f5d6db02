// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/TheLastAirbenderAng/payment-calculator/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser saves a new user account
func (r *UserRepository) CreateUser(user *models.User) error {
	_, err := r.DB.Exec(
		`INSERT INTO users (id, email, display_name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email address. Returns nil when no
// account exists.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	return r.getUser("SELECT id, email, display_name, password_hash, created_at FROM users WHERE email = $1", email)
}

// GetUserByID retrieves a user by ID. Returns nil when no account exists.
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	return r.getUser("SELECT id, email, display_name, password_hash, created_at FROM users WHERE id = $1", id)
}

func (r *UserRepository) getUser(query, arg string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(query, arg).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}
