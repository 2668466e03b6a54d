package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"popfly/internal/domain"
)

const configFile = "config.json"

// persistedConfig is the on-disk shape of config.json. Start is stored as
// [easting_m, northing_m]; faction as its wire name.
type persistedConfig struct {
	Start   *[2]float64 `json:"start,omitempty"`
	Faction string      `json:"faction,omitempty"`
}

func (c persistedConfig) empty() bool { return c.Start == nil && c.Faction == "" }

// FileStore persists the default start point and faction in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a config store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path() string { return filepath.Join(s.dir, configFile) }

// SaveStart persists p as the default start point.
func (s *FileStore) SaveStart(p domain.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg persistedConfig
	if _, err := readJSON(s.path(), &cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg.Start = &[2]float64{p.Easting, p.Northing}
	return s.write(cfg)
}

// LoadStart returns the persisted start point, if any.
func (s *FileStore) LoadStart() (domain.Point, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg persistedConfig
	if _, err := readJSON(s.path(), &cfg); err != nil {
		return domain.Point{}, false, fmt.Errorf("read config: %w", err)
	}
	if cfg.Start == nil {
		return domain.Point{}, false, nil
	}
	return domain.Point{Easting: cfg.Start[0], Northing: cfg.Start[1]}, true, nil
}

// ClearStart removes the persisted start point. The config file is deleted
// outright once nothing else is stored in it.
func (s *FileStore) ClearStart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg persistedConfig
	found, err := readJSON(s.path(), &cfg)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if !found {
		return nil
	}
	cfg.Start = nil
	if cfg.empty() {
		if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return s.write(cfg)
}

// SaveFaction persists the default angular system.
func (s *FileStore) SaveFaction(system domain.AngularSystem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg persistedConfig
	if _, err := readJSON(s.path(), &cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg.Faction = system.String()
	return s.write(cfg)
}

// LoadFaction returns the persisted default angular system, if any.
func (s *FileStore) LoadFaction() (domain.AngularSystem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg persistedConfig
	if _, err := readJSON(s.path(), &cfg); err != nil {
		return domain.NATO, false, fmt.Errorf("read config: %w", err)
	}
	if cfg.Faction == "" {
		return domain.NATO, false, nil
	}
	system, err := domain.ParseAngularSystem(cfg.Faction)
	if err != nil {
		return domain.NATO, false, fmt.Errorf("config: %w", err)
	}
	return system, true, nil
}

func (s *FileStore) write(cfg persistedConfig) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(s.path(), cfg, 0o600)
}

// Compile-time assertion that FileStore implements domain.ConfigStore.
var _ domain.ConfigStore = (*FileStore)(nil)
