package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"
	"github.com/PolarWolf314/cloudsafe/internal/simulation"
)

type Config struct {
	Presentation Presentation     `toml:"presentation" json:"presentation"`
	Simulation   SimulationConfig `toml:"simulation" json:"simulation"`
}

type Presentation struct {
	Theme string `toml:"theme" json:"theme"`
}

type SimulationConfig struct {
	UploadDelayMS  int    `toml:"upload_delay_ms" json:"upload_delay_ms"`
	EncryptDelayMS int    `toml:"encrypt_delay_ms" json:"encrypt_delay_ms"`
	DecryptDelayMS int    `toml:"decrypt_delay_ms" json:"decrypt_delay_ms"`
	OutputDir      string `toml:"output_dir" json:"output_dir"`
	FallbackName   string `toml:"fallback_name" json:"fallback_name"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	d := simulation.DefaultDelays()
	return &Config{
		Presentation: Presentation{Theme: ""},
		Simulation: SimulationConfig{
			UploadDelayMS:  int(d.Upload / time.Millisecond),
			EncryptDelayMS: int(d.Encrypt / time.Millisecond),
			DecryptDelayMS: int(d.Decrypt / time.Millisecond),
			FallbackName:   simulation.DefaultFallbackName,
		},
	}
}

// LoadConfig reads the user config, filling unset keys with defaults.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	md, err := LoadTOML(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v: %w", path, undecoded, kerrors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the user config file.
func SaveConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(ConfigPath(), cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate rejects negative delays and unknown themes.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.UploadDelayMS < 0 || s.EncryptDelayMS < 0 || s.DecryptDelayMS < 0 {
		return fmt.Errorf("delays must not be negative: %w", kerrors.ErrInvalidConfig)
	}
	switch c.Presentation.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme %q: %w", c.Presentation.Theme, kerrors.ErrInvalidTheme)
	}
	return nil
}

// Delays converts the configured pauses.
func (s SimulationConfig) Delays() simulation.Delays {
	return simulation.Delays{
		Upload:  time.Duration(s.UploadDelayMS) * time.Millisecond,
		Encrypt: time.Duration(s.EncryptDelayMS) * time.Millisecond,
		Decrypt: time.Duration(s.DecryptDelayMS) * time.Millisecond,
	}
}

// DownloadDir is where the restored file is saved unless a flag overrides it.
func (s SimulationConfig) DownloadDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}
	return UserCloudSafeSettings.DownloadsPath
}
