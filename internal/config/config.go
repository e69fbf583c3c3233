// Package config persists devkit settings and user preferences.
// Settings live in ~/.config/devkit/config.yml; a project-local .env file
// may override the image and AI endpoints for one checkout.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Default endpoints and image references. Each can be overridden by the
// config file or by the corresponding DEVKIT_* environment variable.
const (
	DefaultRemoteImage = "ghcr.io/devkit-tools/style-checker:latest"
	DefaultLocalImage  = "devkit/style-checker:latest"
	DefaultAIHost      = "http://127.0.0.1:11434"
	DefaultAIModel     = "llama3.2:1b-instruct-q2_K"
)

// ConfigFileName is the settings filename under the user config directory.
const ConfigFileName = "config.yml"

// Settings is the persisted devkit configuration.
// UseSudo is written only after explicit user confirmation; delete the
// config file to force the privilege prompt again.
type Settings struct {
	UseSudo     bool   `yaml:"use_sudo"`
	RemoteImage string `yaml:"remote_image,omitempty"`
	LocalImage  string `yaml:"local_image,omitempty"`
	AIHost      string `yaml:"ai_host,omitempty"`
	AIModel     string `yaml:"ai_model,omitempty"`
}

// DefaultPath returns the settings file path under the user config dir,
// e.g. ~/.config/devkit/config.yml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "devkit", ConfigFileName), nil
}

// NewStore creates the YAML store for Settings at path.
// A missing file loads as zero-value Settings.
func NewStore(path string) *YAMLStore[Settings] {
	return &YAMLStore[Settings]{path: path, allowMissing: true}
}

// Load reads settings from path, fills in defaults, and applies overrides
// from a project-local .env file and the process environment.
func Load(path string) (Settings, error) {
	// Best effort: a checkout without .env is the normal case.
	_ = godotenv.Load(".env")

	s, err := NewStore(path).Load()
	if err != nil {
		return Settings{}, err
	}
	applyDefaults(&s)
	applyEnv(&s)
	return s, nil
}

func applyDefaults(s *Settings) {
	if s.RemoteImage == "" {
		s.RemoteImage = DefaultRemoteImage
	}
	if s.LocalImage == "" {
		s.LocalImage = DefaultLocalImage
	}
	if s.AIHost == "" {
		s.AIHost = DefaultAIHost
	}
	if s.AIModel == "" {
		s.AIModel = DefaultAIModel
	}
}

func applyEnv(s *Settings) {
	if v := os.Getenv("DEVKIT_REMOTE_IMAGE"); v != "" {
		s.RemoteImage = v
	}
	if v := os.Getenv("DEVKIT_LOCAL_IMAGE"); v != "" {
		s.LocalImage = v
	}
	if v := os.Getenv("DEVKIT_AI_HOST"); v != "" {
		s.AIHost = v
	}
	if v := os.Getenv("DEVKIT_AI_MODEL"); v != "" {
		s.AIModel = v
	}
}
