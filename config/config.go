package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/indexpro/risk"
	"github.com/rustyeddy/indexpro/scenario"
)

// Config is the complete IndexPro configuration.
type Config struct {
	Policy   risk.Policy    `json:"policy" yaml:"policy"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Storage  StorageConfig  `json:"storage" yaml:"storage"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// DefaultsConfig seeds Scenario Lab inputs the user has not set. The prices
// are the fallbacks used when the entry/exit fields are blank.
type DefaultsConfig struct {
	Bankroll   float64 `json:"bankroll" yaml:"bankroll"`
	Conviction int     `json:"conviction" yaml:"conviction"`
	Gravity    float64 `json:"gravity" yaml:"gravity"`
	Friction   float64 `json:"friction" yaml:"friction"`
	EntryPrice float64 `json:"entry_price" yaml:"entry_price"`
	ExitPrice  float64 `json:"exit_price" yaml:"exit_price"`
	Tolerance  string  `json:"tolerance" yaml:"tolerance"`
}

// StorageConfig selects where preferences and the scenario journal live.
type StorageConfig struct {
	Type           string `json:"type" yaml:"type"` // "sqlite" or "memory"
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Journal        bool   `json:"journal" yaml:"journal"`
	CandidatesFile string `json:"candidates_file,omitempty" yaml:"candidates_file,omitempty"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// Input returns the default scenario input.
func (d DefaultsConfig) Input() scenario.Input {
	return scenario.Input{
		ActiveBankroll:       d.Bankroll,
		ConvictionLevel:      d.Conviction,
		InstitutionalGravity: d.Gravity,
		ExitFriction:         d.Friction,
		EntryPrice:           d.EntryPrice,
		ExitPrice:            d.ExitPrice,
		RiskTolerance:        risk.Tolerance(strings.ToLower(d.Tolerance)),
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON) on top of Default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	if _, err := risk.ParseTolerance(c.Defaults.Tolerance); err != nil {
		return fmt.Errorf("defaults.tolerance: %w", err)
	}
	if err := c.Defaults.Input().Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite type")
		}
	case "memory":
		if c.Storage.Journal {
			return fmt.Errorf("storage.journal requires sqlite type")
		}
	default:
		return fmt.Errorf("storage.type must be 'sqlite' or 'memory'")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns a configuration with the IndexPro product constants.
func Default() *Config {
	return &Config{
		Policy: risk.DefaultPolicy(),
		Defaults: DefaultsConfig{
			Bankroll:   250000,
			Conviction: 5,
			Gravity:    65,
			Friction:   45,
			EntryPrice: 342.18,
			ExitPrice:  425.00,
			Tolerance:  string(risk.Balanced),
		},
		Storage: StorageConfig{
			Type:   "sqlite",
			DBPath: "./indexpro.sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Environment overrides.
const (
	EnvConfig     = "INDEXPRO_CONFIG"
	EnvDB         = "INDEXPRO_DB"
	EnvAddr       = "INDEXPRO_ADDR"
	EnvLogLevel   = "INDEXPRO_LOG_LEVEL"
	EnvJournal    = "INDEXPRO_JOURNAL"
	EnvCandidates = "INDEXPRO_CANDIDATES"
)

// ApplyEnv overrides fields from lookup (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDB); ok && v != "" {
		c.Storage.DBPath = v
		if v == ":memory:" {
			c.Storage.Type = "memory"
		} else {
			c.Storage.Type = "sqlite"
		}
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvCandidates); ok && v != "" {
		c.Storage.CandidatesFile = v
	}
	if v, ok := lookup(EnvJournal); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJournal, err)
		}
		c.Storage.Journal = b
	}
	return nil
}

// Load reads .env files (missing ones are ignored), then the config file named
// by path or INDEXPRO_CONFIG, then environment overrides. With no file the
// defaults are used.
func Load(path string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
