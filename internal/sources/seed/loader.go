package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/winterhq/navhome/internal/domain"
)

// Loader reads the seed.yaml used to bootstrap an empty store with an
// initial set of categories and sites.
type Loader struct {
	filePath string
}

// NewLoader creates a seed file loader.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the seed file into a validated collection.
// Entries without a usable URL are skipped; category and site IDs default
// to a slug of the name when omitted.
func (l *Loader) Load() (domain.Collection, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var raw domain.Collection
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	collection := normalize(raw)
	if err := domain.ValidateCollection(collection); err != nil {
		return nil, fmt.Errorf("seed file invalid: %w", err)
	}
	return collection, nil
}

func normalize(raw domain.Collection) domain.Collection {
	out := make(domain.Collection, 0, len(raw))
	for _, cat := range raw {
		if strings.TrimSpace(cat.Name) == "" {
			continue
		}
		if strings.TrimSpace(cat.ID) == "" {
			cat.ID = slugify(cat.Name)
		}

		sites := make([]domain.Site, 0, len(cat.Sites))
		for _, site := range cat.Sites {
			if strings.TrimSpace(site.Name) == "" || !domain.IsValidURL(site.URL) {
				continue
			}
			if strings.TrimSpace(site.ID) == "" {
				site.ID = slugify(site.Name)
			}
			sites = append(sites, site)
		}
		cat.Sites = sites
		out = append(out, cat)
	}
	return out
}

// slugify lowercases a name and collapses everything outside [a-z0-9] into
// single dashes. "Dev Tools" -> "dev-tools".
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
