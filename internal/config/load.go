package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads settings from path. Fields missing from the file keep their
// defaults; a missing file yields Defaults().
func Load(path string) (Settings, error) {
	f, err := formatFor(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return decode(path, f, data)
}

func decode(path string, f format, data []byte) (Settings, error) {
	s := Defaults()
	switch f {
	case formatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			perr := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return Settings{}, perr
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	}
	return s, nil
}

// Save writes s to path in the format implied by its extension, creating
// parent directories as needed.
func Save(path string, s Settings) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(s)
	case formatYAML:
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", path, err)
	}
	return nil
}

// DefaultPath is the settings file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "shroud", "settings.toml"), nil
}
