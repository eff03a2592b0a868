package dashboard

import "strings"

// iconKeywords maps substrings of a site's name or URL to a pictogram.
// First match wins, so more specific keywords come before generic ones.
var iconKeywords = []struct {
	keyword string
	icon    string
}{
	{"github", "🐙"},
	{"gitlab", "🦊"},
	{"git", "🔀"},
	{"mail", "✉️"},
	{"calendar", "📅"},
	{"drive", "📁"},
	{"docs", "📄"},
	{"wiki", "📚"},
	{"cloud", "☁️"},
	{"music", "🎵"},
	{"video", "🎬"},
	{"photo", "📷"},
	{"chat", "💬"},
	{"news", "📰"},
	{"search", "🔍"},
	{"monitor", "📈"},
	{"home", "🏠"},
}

// fallbackIcons is cycled through by site position so cards without a
// keyword match stay visually distinct but stable across renders.
var fallbackIcons = []string{"🔗", "🌐", "⭐", "📌", "🧭", "🗂️"}

// GuessIcon picks a pictogram for a site without an explicit icon. The
// name and URL are scanned for known keywords; otherwise the site's index
// within its category selects a stable fallback.
func GuessIcon(name, url string, index int) string {
	haystack := strings.ToLower(name + " " + url)
	for _, entry := range iconKeywords {
		if strings.Contains(haystack, entry.keyword) {
			return entry.icon
		}
	}
	if index < 0 {
		index = 0
	}
	return fallbackIcons[index%len(fallbackIcons)]
}
