package domain

import "strings"

// FilterCollection returns a read-only derived subset of the collection for
// the given query: case-insensitive substring match against site name and
// description. A category appears in the result only when at least one of
// its sites matches. An empty or whitespace-only query returns the input
// unchanged. The input collection is never mutated.
func FilterCollection(c Collection, query string) Collection {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c
	}

	filtered := make(Collection, 0, len(c))
	for _, cat := range c {
		var matched []Site
		for _, site := range cat.Sites {
			if siteMatches(site, query) {
				matched = append(matched, site)
			}
		}
		if len(matched) == 0 {
			continue
		}
		cat.Sites = matched
		filtered = append(filtered, cat)
	}
	return filtered
}

func siteMatches(s Site, query string) bool {
	if strings.Contains(strings.ToLower(s.Name), query) {
		return true
	}
	return s.Desc != "" && strings.Contains(strings.ToLower(s.Desc), query)
}
