package dashboard

import (
	"strings"
	"unicode"

	"github.com/winterhq/navhome/internal/domain"
)

// Card is one rendered site tile.
type Card struct {
	ID    string
	Name  string
	URL   string
	Desc  string
	Icon  string
	Glyph string
}

// CategoryView is one rendered category section.
type CategoryView struct {
	ID    string
	Name  string
	Cards []Card
}

// ViewModel is what a frontend needs to draw the dashboard. It carries no
// behavior and no references back into the source collection.
type ViewModel struct {
	Categories []CategoryView
	Empty      bool
	Admin      bool // show edit affordances
}

// Render maps a collection to its view model. Pure: the input is never
// mutated and the output shares no slices with it.
func Render(collection domain.Collection, admin bool) ViewModel {
	vm := ViewModel{
		Categories: make([]CategoryView, 0, len(collection)),
		Admin:      admin,
	}
	for _, cat := range collection {
		view := CategoryView{
			ID:    cat.ID,
			Name:  cat.Name,
			Cards: make([]Card, 0, len(cat.Sites)),
		}
		for i, site := range cat.Sites {
			card := Card{
				ID:    site.ID,
				Name:  site.Name,
				URL:   site.URL,
				Desc:  site.Desc,
				Icon:  site.Icon,
				Glyph: glyph(site.Name),
			}
			if card.Icon == "" {
				card.Icon = GuessIcon(site.Name, site.URL, i)
			}
			view.Cards = append(view.Cards, card)
		}
		vm.Categories = append(vm.Categories, view)
	}
	vm.Empty = len(vm.Categories) == 0
	return vm
}

// glyph returns the uppercased first letter of name, used when a card has
// no usable icon image.
func glyph(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
