package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterhq/navhome/internal/prefs"
)

func testPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	return prefs.Open(t.TempDir())
}

func TestThemeDefaultsToLight(t *testing.T) {
	m := NewThemeManager(testPrefs(t), nil)
	assert.Equal(t, ThemeLight, m.Current())
}

func TestThemeUnknownValueFallsBack(t *testing.T) {
	store := testPrefs(t)
	require.NoError(t, store.Set(prefs.KeyTheme, "neon"))

	m := NewThemeManager(store, nil)
	assert.Equal(t, ThemeLight, m.Current())
}

func TestThemeCycleOrder(t *testing.T) {
	m := NewThemeManager(testPrefs(t), func() string { return "https://example.com/bg.jpg" })

	want := []string{ThemeDark, ThemePurple, ThemeRed, ThemeCustom, ThemeLight}
	for _, expected := range want {
		got, err := m.Cycle()
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, expected, m.Current(), "cycle result must be persisted")
	}
}

func TestThemeCustomPromptsOnce(t *testing.T) {
	prompts := 0
	m := NewThemeManager(testPrefs(t), func() string {
		prompts++
		return "https://example.com/bg.jpg"
	})

	require.NoError(t, m.Set(ThemeRed))
	got, err := m.Cycle()
	require.NoError(t, err)
	assert.Equal(t, ThemeCustom, got)
	assert.Equal(t, 1, prompts)
	assert.Equal(t, "https://example.com/bg.jpg", m.Background())

	// Full loop back to custom: the stored background is reused.
	for i := 0; i < len(themeCycle); i++ {
		_, err := m.Cycle()
		require.NoError(t, err)
	}
	assert.Equal(t, ThemeCustom, m.Current())
	assert.Equal(t, 1, prompts)
}

func TestThemeCustomDeclinedFallsBackToLight(t *testing.T) {
	m := NewThemeManager(testPrefs(t), func() string { return "" })

	require.NoError(t, m.Set(ThemeRed))
	got, err := m.Cycle()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)
	assert.Empty(t, m.Background())
}

func TestThemeCustomWithoutPromptFunc(t *testing.T) {
	m := NewThemeManager(testPrefs(t), nil)

	require.NoError(t, m.Set(ThemeRed))
	got, err := m.Cycle()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)
}

func TestSettingsCardsPerRow(t *testing.T) {
	store := testPrefs(t)
	s := NewSettings(store)

	assert.Equal(t, DefaultCardsPerRow, s.CardsPerRow())

	require.NoError(t, s.SetCardsPerRow(6))
	assert.Equal(t, 6, s.CardsPerRow())

	assert.Error(t, s.SetCardsPerRow(1))
	assert.Error(t, s.SetCardsPerRow(7))
	assert.Equal(t, 6, s.CardsPerRow(), "rejected writes leave the value alone")

	// Garbage on disk reads as the default.
	require.NoError(t, store.Set(prefs.KeyCardsPerRow, "lots"))
	assert.Equal(t, DefaultCardsPerRow, s.CardsPerRow())

	require.NoError(t, store.Set(prefs.KeyCardsPerRow, "99"))
	assert.Equal(t, DefaultCardsPerRow, s.CardsPerRow())
}
