package deps

import (
	"time"

	"github.com/winterhq/navhome/internal/auth"
	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/logger"
)

// Deps carries the shared dependencies handed to every route registrar.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	KV   kv.Store        // backing key-value store
	Auth *auth.Validator // admin token validator
}
