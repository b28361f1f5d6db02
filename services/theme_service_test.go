package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakePreferenceStore is an in-memory PreferenceStorage for tests.
type fakePreferenceStore struct {
	themes map[string]string
	sets   int
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{themes: make(map[string]string)}
}

func (s *fakePreferenceStore) GetTheme(ownerID string) (string, bool, error) {
	theme, found := s.themes[ownerID]
	return theme, found, nil
}

func (s *fakePreferenceStore) SetTheme(ownerID, theme string) error {
	s.themes[ownerID] = theme
	s.sets++
	return nil
}

func TestThemeService_Toggle(t *testing.T) {
	service := NewThemeService(newFakePreferenceStore(), nil)

	assert.Equal(t, "dark", service.Toggle("light"))
	assert.Equal(t, "light", service.Toggle("dark"))
	// Total over all inputs
	assert.Equal(t, "light", service.Toggle("solarized"))
	assert.Equal(t, "light", service.Toggle(""))
}

func TestThemeService_ResolveInitial_PersistedOverridesSystem(t *testing.T) {
	store := newFakePreferenceStore()
	store.themes["ana"] = "light"

	// System signal says dark, but the persisted choice wins
	service := NewThemeService(store, func() bool { return true })

	theme, err := service.ResolveInitial("ana")
	assert.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestThemeService_ResolveInitial_SystemSignalFallback(t *testing.T) {
	service := NewThemeService(newFakePreferenceStore(), func() bool { return true })

	theme, err := service.ResolveInitial("ben")
	assert.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestThemeService_ResolveInitial_DefaultsToLight(t *testing.T) {
	service := NewThemeService(newFakePreferenceStore(), nil)

	theme, err := service.ResolveInitial("cara")
	assert.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestThemeService_ResolveInitial_InvalidPersistedValueFallsThrough(t *testing.T) {
	store := newFakePreferenceStore()
	store.themes["dan"] = "solarized"

	service := NewThemeService(store, func() bool { return true })

	theme, err := service.ResolveInitial("dan")
	assert.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestThemeService_Apply_IdempotentAndNormalizing(t *testing.T) {
	store := newFakePreferenceStore()
	service := NewThemeService(store, nil)

	applied, err := service.Apply("ana", "dark")
	assert.NoError(t, err)
	assert.Equal(t, "dark", applied)

	// Applying the same theme twice produces the same state
	again, err := service.Apply("ana", "dark")
	assert.NoError(t, err)
	assert.Equal(t, applied, again)
	assert.Equal(t, "dark", store.themes["ana"])

	// Unknown values apply as light
	applied, err = service.Apply("ana", "blue")
	assert.NoError(t, err)
	assert.Equal(t, "light", applied)
}
