package dashboard

import (
	"fmt"
	"strconv"

	"github.com/winterhq/navhome/internal/prefs"
)

// Card grid bounds. Values outside the range are rejected on write and
// ignored on read.
const (
	MinCardsPerRow     = 2
	MaxCardsPerRow     = 6
	DefaultCardsPerRow = 4
)

// Settings persists small display knobs that are not part of the shared
// site data.
type Settings struct {
	store *prefs.Store
}

func NewSettings(store *prefs.Store) *Settings {
	return &Settings{store: store}
}

// CardsPerRow returns the persisted grid width, falling back to the
// default when the stored value is missing or out of range.
func (s *Settings) CardsPerRow() int {
	n, err := strconv.Atoi(s.store.Get(prefs.KeyCardsPerRow))
	if err != nil || n < MinCardsPerRow || n > MaxCardsPerRow {
		return DefaultCardsPerRow
	}
	return n
}

// SetCardsPerRow persists the grid width after range-checking it.
func (s *Settings) SetCardsPerRow(n int) error {
	if n < MinCardsPerRow || n > MaxCardsPerRow {
		return fmt.Errorf("cards per row must be between %d and %d, got %d",
			MinCardsPerRow, MaxCardsPerRow, n)
	}
	return s.store.Set(prefs.KeyCardsPerRow, strconv.Itoa(n))
}
