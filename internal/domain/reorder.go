package domain

// ReorderCategories rebuilds the collection in the order given by ids,
// looking each category up by ID and appending it in the new position.
// Unknown IDs are silently dropped and duplicate IDs never produce
// duplicate entries, so the result is always a permutation of the subset
// of existing categories referenced by ids.
func ReorderCategories(c Collection, ids []string) Collection {
	reordered := make(Collection, 0, len(c))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if i := c.FindCategory(id); i >= 0 {
			reordered = append(reordered, c[i])
			seen[id] = true
		}
	}
	return reordered
}

// ReorderSites applies the same rebuild-by-id algorithm to a single
// category's site list.
func ReorderSites(sites []Site, ids []string) []Site {
	byID := make(map[string]Site, len(sites))
	for _, s := range sites {
		byID[s.ID] = s
	}

	reordered := make([]Site, 0, len(sites))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if s, ok := byID[id]; ok {
			reordered = append(reordered, s)
			seen[id] = true
		}
	}
	return reordered
}
