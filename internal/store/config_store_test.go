package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"popfly/internal/domain"
	"popfly/internal/store"
)

func TestStartSaveLoadClear(t *testing.T) {
	dir := t.TempDir()
	var cfg domain.ConfigStore = store.NewFileStore(dir)

	if _, found, err := cfg.LoadStart(); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	want := domain.Point{Easting: 3700, Northing: 5000}
	if err := cfg.SaveStart(want); err != nil {
		t.Fatalf("save start: %v", err)
	}

	got, found, err := cfg.LoadStart()
	if err != nil {
		t.Fatalf("load start: %v", err)
	}
	if !found || got != want {
		t.Fatalf("load start: found=%v got=%+v want=%+v", found, got, want)
	}

	if err := cfg.ClearStart(); err != nil {
		t.Fatalf("clear start: %v", err)
	}
	if _, found, _ := cfg.LoadStart(); found {
		t.Fatal("start still present after clear")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); !os.IsNotExist(err) {
		t.Fatalf("empty config file should be deleted, stat err: %v", err)
	}
}

func TestClearStartKeepsFaction(t *testing.T) {
	dir := t.TempDir()
	var cfg domain.ConfigStore = store.NewFileStore(dir)

	if err := cfg.SaveStart(domain.Point{Easting: 100, Northing: 200}); err != nil {
		t.Fatalf("save start: %v", err)
	}
	if err := cfg.SaveFaction(domain.Warsaw); err != nil {
		t.Fatalf("save faction: %v", err)
	}
	if err := cfg.ClearStart(); err != nil {
		t.Fatalf("clear start: %v", err)
	}

	system, found, err := cfg.LoadFaction()
	if err != nil {
		t.Fatalf("load faction: %v", err)
	}
	if !found || system != domain.Warsaw {
		t.Fatalf("faction lost on clear-start: found=%v system=%v", found, system)
	}
}

func TestFactionRoundTrip(t *testing.T) {
	var cfg domain.ConfigStore = store.NewFileStore(t.TempDir())

	if _, found, err := cfg.LoadFaction(); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}
	for _, system := range []domain.AngularSystem{domain.Warsaw, domain.NATO} {
		if err := cfg.SaveFaction(system); err != nil {
			t.Fatalf("save faction %v: %v", system, err)
		}
		got, found, err := cfg.LoadFaction()
		if err != nil || !found || got != system {
			t.Fatalf("faction round trip: got=%v found=%v err=%v", got, found, err)
		}
	}
}

func TestClearStartOnMissingFileIsNoop(t *testing.T) {
	var cfg domain.ConfigStore = store.NewFileStore(t.TempDir())
	if err := cfg.ClearStart(); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}
