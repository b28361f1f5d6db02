// repository/preference_repository.go
package repository

import (
	"database/sql"
	"fmt"
)

// PreferenceRepository handles per-user display preferences
type PreferenceRepository struct {
	DB *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// GetTheme retrieves the persisted theme for an owner. The second return
// value reports whether a preference has been saved.
func (r *PreferenceRepository) GetTheme(ownerID string) (string, bool, error) {
	var theme string
	err := r.DB.QueryRow(
		"SELECT theme FROM preferences WHERE owner_id = $1",
		ownerID,
	).Scan(&theme)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get theme preference: %v", err)
	}
	return theme, true, nil
}

// SetTheme persists the theme choice for an owner
func (r *PreferenceRepository) SetTheme(ownerID, theme string) error {
	_, err := r.DB.Exec(
		`INSERT INTO preferences (owner_id, theme) VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE SET theme = EXCLUDED.theme`,
		ownerID, theme,
	)
	if err != nil {
		return fmt.Errorf("failed to set theme preference: %v", err)
	}
	return nil
}
