package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError reports the first structural violation found in a
// collection. SiteIndex is -1 when the category itself is malformed.
type ValidationError struct {
	CategoryIndex int
	SiteIndex     int
	Field         string
}

func (e *ValidationError) Error() string {
	if e.SiteIndex < 0 {
		return fmt.Sprintf("category %d: missing required field %q", e.CategoryIndex, e.Field)
	}
	return fmt.Sprintf("category %d, site %d: missing required field %q", e.CategoryIndex, e.SiteIndex, e.Field)
}

// ValidateCollection checks the collection invariant: every category carries
// a non-empty id, name and a sites list; every site carries a non-empty id,
// name and url. The first offending entry is reported by index.
func ValidateCollection(c Collection) error {
	for i, cat := range c {
		switch {
		case strings.TrimSpace(cat.ID) == "":
			return &ValidationError{CategoryIndex: i, SiteIndex: -1, Field: "id"}
		case strings.TrimSpace(cat.Name) == "":
			return &ValidationError{CategoryIndex: i, SiteIndex: -1, Field: "name"}
		case cat.Sites == nil:
			return &ValidationError{CategoryIndex: i, SiteIndex: -1, Field: "sites"}
		}
		for j, site := range cat.Sites {
			switch {
			case strings.TrimSpace(site.ID) == "":
				return &ValidationError{CategoryIndex: i, SiteIndex: j, Field: "id"}
			case strings.TrimSpace(site.Name) == "":
				return &ValidationError{CategoryIndex: i, SiteIndex: j, Field: "name"}
			case strings.TrimSpace(site.URL) == "":
				return &ValidationError{CategoryIndex: i, SiteIndex: j, Field: "url"}
			}
		}
	}
	return nil
}

// IsValidURL reports whether raw parses as a well-formed absolute URL.
// Used by edit forms before committing a site; the collection invariant
// itself only requires the field to be present.
func IsValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
