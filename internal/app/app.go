package app

import (
	"fmt"
	"os"
	"path/filepath"

	"popfly/internal/domain"
	"popfly/internal/store"
	"popfly/internal/web"
)

// envConfigDir overrides the config directory, mainly for tests and scripting.
const envConfigDir = "POPFLY_CONFIG_DIR"

// App bundles the collaborators a command needs.
type App struct {
	Config domain.ConfigStore
	Remote *web.Client // nil unless a server URL was configured
}

// New constructs the dependency graph from cfg. The config directory resolves
// flag > environment > os.UserConfigDir()/popfly.
func New(cfg Config) (*App, error) {
	dir := cfg.ConfigDir
	if dir == "" {
		dir = os.Getenv(envConfigDir)
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "popfly")
	}

	a := &App{Config: store.NewFileStore(dir)}
	if cfg.ServerURL != "" {
		a.Remote = web.NewClient(cfg.ServerURL)
	}
	return a, nil
}
