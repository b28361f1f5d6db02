package services

import (
	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// PreferenceStorage defines the persisted-preference operations the theme
// service needs.
type PreferenceStorage interface {
	GetTheme(ownerID string) (string, bool, error)
	SetTheme(ownerID, theme string) error
}

// ThemeService resolves and persists the display theme. Two states, light
// and dark; the system signal is consulted once, only when no valid
// persisted choice exists.
type ThemeService struct {
	store PreferenceStorage
	// systemDark probes the system-level dark-mode signal
	systemDark func() bool
}

// NewThemeService creates a new theme service
func NewThemeService(store PreferenceStorage, systemDark func() bool) *ThemeService {
	if systemDark == nil {
		systemDark = func() bool { return false }
	}
	return &ThemeService{store: store, systemDark: systemDark}
}

// ResolveInitial returns the persisted preference when present and valid,
// falls back to the system signal, and defaults to light.
func (s *ThemeService) ResolveInitial(ownerID string) (string, error) {
	stored, found, err := s.store.GetTheme(ownerID)
	if err != nil {
		return "", err
	}
	if found && utils.IsValidTheme(stored) {
		return stored, nil
	}
	if s.systemDark() {
		return utils.ThemeDark, nil
	}
	return utils.ThemeLight, nil
}

// Apply persists the theme choice and returns the applied value. Anything
// other than dark applies as light. Applying the same theme twice is a
// no-op the second time.
func (s *ThemeService) Apply(ownerID, theme string) (string, error) {
	applied := utils.NormalizeTheme(theme)
	if err := s.store.SetTheme(ownerID, applied); err != nil {
		return "", err
	}
	return applied, nil
}

// Toggle returns the opposite theme. Total over all inputs: anything that
// is not light toggles to light.
func (s *ThemeService) Toggle(current string) string {
	if current == utils.ThemeLight {
		return utils.ThemeDark
	}
	return utils.ThemeLight
}
