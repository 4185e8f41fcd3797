package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvPath names the variable holding an explicit config file path.
	EnvPath = "WORDDECK_CONFIG"
	// FileName is looked up when EnvPath is unset.
	FileName = "worddeck.yaml"
)

// Load resolves the config file and reads it with LoadFile.
//
// An explicit WORDDECK_CONFIG must exist. Otherwise worddeck.yaml is taken from
// the working directory, then from the executable's directory, since the
// desktop form is often started from a file manager with an unrelated working
// directory. Finding neither is not an error.
func Load() (*Config, error) {
	path, err := locate(os.Getenv(EnvPath), searchDirs())
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads path, or only the environment when path is empty, over the
// env-default values and validates the result. Environment variables win over
// the file.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

func locate(explicit string, dirs []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", nil
}
