package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults holds the CLI's persisted default settings: the field width
// `gfshare split` assumes and the RNG source the split/combine/new-share/
// random commands assume when not given explicitly, plus the preferred
// output format and log level.
type Defaults struct {
	Bits         int    `yaml:"bits"`
	RNGSource    string `yaml:"rng_source"`
	OutputFormat string `yaml:"output_format"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

// DefaultDefaults returns the out-of-the-box configuration: field width
// 8, auto-detected secure RNG, auto output format, logging off.
func DefaultDefaults() Defaults {
	return Defaults{
		Bits:         8,
		RNGSource:    "",
		OutputFormat: "auto",
		LogLevel:     "off",
	}
}

// DefaultPath returns the conventional location of the CLI config file,
// "$XDG_CONFIG_HOME/gfshare/config.yaml" or "~/.config/gfshare/config.yaml".
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gfshare", "config.yaml"), nil
}

// Load reads and parses a Defaults file at path. A missing file returns
// DefaultDefaults with no error, so a fresh install needs no config step.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the CLI's own config file location
	if os.IsNotExist(err) {
		return DefaultDefaults(), nil
	}
	if err != nil {
		return Defaults{}, err
	}

	d := DefaultDefaults()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// Save writes d to path as YAML, creating parent directories as needed.
func Save(path string, d Defaults) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
