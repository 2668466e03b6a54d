package app

// Config holds runtime wiring options for building the app.
type Config struct {
	ConfigDir string // overrides the default config directory
	ServerURL string // remote popflyd base URL; empty means compute locally
}
