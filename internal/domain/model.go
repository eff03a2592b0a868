package domain

// Site is a single bookmarked link with display metadata.
//
// A Site is owned exclusively by its containing Category. Moving a site
// across categories is not part of the model: callers delete and recreate.
type Site struct {
	// ID is unique within the category's site list. Generated IDs are
	// globally unique so lookups by ID alone stay unambiguous.
	ID string `json:"id" yaml:"id"`

	// Name is the display title of the link.
	Name string `json:"name" yaml:"name"`

	// URL is the absolute URL the card points at.
	URL string `json:"url" yaml:"url"`

	// Desc is an optional one-line description shown on the card.
	Desc string `json:"desc,omitempty" yaml:"desc,omitempty"`

	// Icon is an optional image URL. When empty the renderer derives a
	// default glyph from the site name.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Category is a named, ordered grouping of sites.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Sites []Site `json:"sites" yaml:"sites"`
}

// Collection is the top-level ordered sequence of categories. Order is
// meaningful (display order) and only reorder operations change it.
type Collection []Category

// Clone returns a deep copy of the collection. Mutating the copy never
// touches the original, including the per-category site slices.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, cat := range c {
		out[i] = cat
		if cat.Sites != nil {
			out[i].Sites = make([]Site, len(cat.Sites))
			copy(out[i].Sites, cat.Sites)
		}
	}
	return out
}

// FindCategory returns the index of the category with the given ID, or -1.
func (c Collection) FindCategory(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSite locates a site by ID across all categories and returns the
// category index and site index, or (-1, -1) when absent.
func (c Collection) FindSite(id string) (int, int) {
	for i := range c {
		for j := range c[i].Sites {
			if c[i].Sites[j].ID == id {
				return i, j
			}
		}
	}
	return -1, -1
}
