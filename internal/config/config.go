package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in [general].
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendCSV    = "csv"
)

// Config holds all tracker configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Consumption ConsumptionConfig `toml:"consumption"`
	Rewards     []RewardConfig    `toml:"rewards"`
}

// GeneralConfig holds storage preferences.
type GeneralConfig struct {
	// Backend selects the serialization adapter: sqlite, json or csv.
	Backend string `toml:"backend"`
	// DataDir overrides where log files live.
	DataDir string `toml:"data_dir,omitempty"`
}

// ConsumptionConfig holds the cost-estimate settings.
type ConsumptionConfig struct {
	PricePerGram float64 `toml:"price_per_gram"`
}

// RewardConfig is one row of the reward cost table, in display order.
type RewardConfig struct {
	Label string `toml:"label"`
	Cost  int    `toml:"cost"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend: BackendSQLite,
		},
		Consumption: ConsumptionConfig{
			PricePerGram: 7.0,
		},
		Rewards: []RewardConfig{
			{Label: "30 Min Gaming", Cost: 30},
			{Label: "1 Folge Serie", Cost: 50},
			{Label: "Lieferessen bestellen", Cost: 60},
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "xp-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "xp-tracker")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.Backend == "" {
		cfg.General.Backend = BackendSQLite
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DataDir returns the directory holding the log files.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "xp-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "xp-tracker")
}

func (c Config) DBPath() string { return filepath.Join(c.DataDir(), "tracker.db") }

func (c Config) LedgerPath(ext string) string {
	return filepath.Join(c.DataDir(), "xp_log."+ext)
}

func (c Config) MissionsPath(ext string) string {
	return filepath.Join(c.DataDir(), "missions_done."+ext)
}

func (c Config) CatalogPath() string { return filepath.Join(c.DataDir(), "xp_tasks.json") }

func (c Config) TodayStatusPath() string { return filepath.Join(c.DataDir(), "today_status.json") }
