package domain

// ConfigStore persists the default start point and faction between CLI runs.
// The engine never touches this; adapters resolve values from it and pass
// them in.
type ConfigStore interface {
	SaveStart(p Point) error
	LoadStart() (Point, bool, error)
	ClearStart() error
	SaveFaction(s AngularSystem) error
	LoadFaction() (AngularSystem, bool, error)
}
