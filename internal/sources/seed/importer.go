package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/logger"
)

// Importer bootstraps the sites collection from a seed file. The import
// happens at most once: an existing collection always wins, so admin edits
// are never overwritten by a restart.
type Importer struct {
	loader *Loader
	store  kv.Store
	logger logger.Logger
}

// NewImporter creates a seed importer.
func NewImporter(seedFile string, store kv.Store, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(seedFile),
		store:  store,
		logger: log,
	}
}

// Bootstrap loads the seed file and writes it to the store only when no
// collection exists yet.
func (i *Importer) Bootstrap(ctx context.Context) error {
	collection, err := i.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to serialize seed: %w", err)
	}

	stored, err := i.store.PutIfAbsent(ctx, kv.KeySites, string(data))
	if err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}

	if stored {
		i.logger.Info("seeded sites collection",
			logger.Int("categories", len(collection)))
	} else {
		i.logger.Debug("store already holds a collection, seed skipped")
	}
	return nil
}
