package cudafind

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences supplies packaging-level discovery hints. The only hint
// consulted is a preferred toolkit version, used when deriving the toolkit
// directory from an HPC SDK super-root.
type Preferences interface {
	PreferredVersion() (string, bool)
}

// nopPreferences carries no hints.
type nopPreferences struct{}

func (nopPreferences) PreferredVersion() (string, bool) { return "", false }

// filePreferences reads hints from the user's config file. Unknown keys are
// ignored.
type filePreferences struct {
	Version string `yaml:"version"`
}

func (p *filePreferences) PreferredVersion() (string, bool) {
	return p.Version, p.Version != ""
}

// loadPreferences reads ~/.config/cudafind/config.yaml. A missing or
// unreadable file simply means no preferences.
func loadPreferences() Preferences {
	home, err := os.UserHomeDir()
	if err != nil {
		return nopPreferences{}
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "cudafind", "config.yaml"))
	if err != nil {
		return nopPreferences{}
	}
	var prefs filePreferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nopPreferences{}
	}
	return &prefs
}
