package dashboard

import "github.com/winterhq/navhome/internal/prefs"

// Theme names as persisted in preferences.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemePurple = "purple"
	ThemeRed    = "red"
	ThemeCustom = "custom"
)

// themeCycle is the order Cycle walks through. Custom sits last so the
// background prompt only fires after the built-in themes.
var themeCycle = []string{ThemeLight, ThemeDark, ThemePurple, ThemeRed, ThemeCustom}

// ThemeManager persists the active theme and the custom background image.
// The background is asked for lazily: only when the cycle first lands on
// the custom theme with nothing stored yet.
type ThemeManager struct {
	store  *prefs.Store
	prompt func() string
}

func NewThemeManager(store *prefs.Store, prompt func() string) *ThemeManager {
	return &ThemeManager{store: store, prompt: prompt}
}

// Current returns the persisted theme, defaulting to light for anything
// missing or unrecognized.
func (m *ThemeManager) Current() string {
	saved := m.store.Get(prefs.KeyTheme)
	for _, name := range themeCycle {
		if saved == name {
			return name
		}
	}
	return ThemeLight
}

// Background returns the stored custom background image URL, or "".
func (m *ThemeManager) Background() string {
	return m.store.Get(prefs.KeyCustomBackground)
}

// Set persists the given theme without touching the custom background.
func (m *ThemeManager) Set(theme string) error {
	return m.store.Set(prefs.KeyTheme, theme)
}

// Cycle advances to the next theme and returns it. Entering the custom
// theme with no stored background prompts for one; an empty answer skips
// the custom theme and wraps back to light.
func (m *ThemeManager) Cycle() (string, error) {
	next := themeCycle[0]
	current := m.Current()
	for i, name := range themeCycle {
		if name == current {
			next = themeCycle[(i+1)%len(themeCycle)]
			break
		}
	}

	if next == ThemeCustom && m.Background() == "" {
		answer := ""
		if m.prompt != nil {
			answer = m.prompt()
		}
		if answer == "" {
			next = ThemeLight
		} else if err := m.store.Set(prefs.KeyCustomBackground, answer); err != nil {
			return current, err
		}
	}

	if err := m.Set(next); err != nil {
		return current, err
	}
	return next, nil
}
