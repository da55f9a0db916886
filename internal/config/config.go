// Package config loads flopguide settings from an HCL file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/flopguide/advice"
)

// Environment variable names that override file settings
const (
	// EnvSeed fixes the random hand sequence
	EnvSeed = "FLOPGUIDE_SEED"

	// EnvLogLevel overrides log { level }
	EnvLogLevel = "FLOPGUIDE_LOG_LEVEL"
)

// Config is the resolved configuration
type Config struct {
	Seed    int64 // 0 means derive from the clock
	Display DisplaySettings
	Server  ServerSettings
	Log     LogSettings
}

// DisplaySettings controls terminal rendering
type DisplaySettings struct {
	MaxExamples int   `hcl:"max_examples,optional"`
	Color       *bool `hcl:"color,optional"`
	Width       int   `hcl:"width,optional"`
}

// ServerSettings controls the websocket endpoint
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// fileConfig mirrors the HCL layout; every block is optional
type fileConfig struct {
	Seed    int64            `hcl:"seed,optional"`
	Display *DisplaySettings `hcl:"display,block"`
	Server  *ServerSettings  `hcl:"server,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	color := true
	return &Config{
		Display: DisplaySettings{
			MaxExamples: advice.MaxExamples,
			Color:       &color,
			Width:       120,
		},
		Server: ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.Seed = fc.Seed
	if d := fc.Display; d != nil {
		if d.MaxExamples != 0 {
			cfg.Display.MaxExamples = d.MaxExamples
		}
		if d.Color != nil {
			cfg.Display.Color = d.Color
		}
		if d.Width != 0 {
			cfg.Display.Width = d.Width
		}
	}
	if s := fc.Server; s != nil {
		if s.Address != "" {
			cfg.Server.Address = s.Address
		}
		if s.Port != 0 {
			cfg.Server.Port = s.Port
		}
	}
	if l := fc.Log; l != nil && l.Level != "" {
		cfg.Log.Level = l.Level
	}

	return cfg, nil
}

// LoadDotEnv exports variables from a dotenv file into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func LoadDotEnv(filename string) error {
	if filename == "" {
		return nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(filename); err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv() error {
	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Display.MaxExamples < 1 || c.Display.MaxExamples > advice.MaxExamples {
		return fmt.Errorf("display: max_examples must be between 1 and %d, got %d", advice.MaxExamples, c.Display.MaxExamples)
	}
	if c.Display.Width < 40 {
		return fmt.Errorf("display: width must be at least 40, got %d", c.Display.Width)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ColorEnabled reports whether styled output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.Display.Color == nil || *c.Display.Color
}

// LogLevel parses the configured level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("log: %w", err)
	}
	return level, nil
}

// ServerAddress returns the full listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
