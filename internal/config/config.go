// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Sampling SamplingConfig `mapstructure:"sampling"`
	Selector SelectorConfig `mapstructure:"selector"`
	Virtual  VirtualConfig  `mapstructure:"virtual"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SamplingConfig holds the defaults for the sample command. Positional
// arguments on the command line take precedence over these.
type SamplingConfig struct {
	Samples int `mapstructure:"samples"`
	DelayMS int `mapstructure:"delay_ms"`
}

// SelectorConfig holds the identity rule for recognizing the test
// fixture during a catalog scan.
type SelectorConfig struct {
	NameContains []string `mapstructure:"name_contains"`
	VendorID     uint16   `mapstructure:"vendor_id"`
	ProductID    uint16   `mapstructure:"product_id"`
}

// VirtualConfig describes the uinput fixture the virtual command creates.
type VirtualConfig struct {
	Name      string `mapstructure:"name"`
	VendorID  uint16 `mapstructure:"vendor_id"`
	ProductID uint16 `mapstructure:"product_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Sampling: SamplingConfig{
			Samples: 10,
			DelayMS: 50,
		},
		Selector: SelectorConfig{
			NameContains: []string{"Test Gamepad", "vJoy"},
			VendorID:     0x1234,
			ProductID:    0xBEAD,
		},
		Virtual: VirtualConfig{
			Name:      "vJoy Device",
			VendorID:  0x1234,
			ProductID: 0xBEAD,
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("joyharness")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath("/etc/joyharness")
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "joyharness"))
		}
		viper.AddConfigPath(".")
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine, defaults apply.
	}

	c := DefaultConfig
	if err := viper.Unmarshal(&c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	cfg = &c
	return nil
}

// Get returns the loaded configuration, initializing with defaults if
// Init has not run.
func Get() *Config {
	if cfg == nil {
		c := DefaultConfig
		cfg = &c
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("sampling.samples", DefaultConfig.Sampling.Samples)
	viper.SetDefault("sampling.delay_ms", DefaultConfig.Sampling.DelayMS)
	viper.SetDefault("selector.name_contains", DefaultConfig.Selector.NameContains)
	viper.SetDefault("selector.vendor_id", int(DefaultConfig.Selector.VendorID))
	viper.SetDefault("selector.product_id", int(DefaultConfig.Selector.ProductID))
	viper.SetDefault("virtual.name", DefaultConfig.Virtual.Name)
	viper.SetDefault("virtual.vendor_id", int(DefaultConfig.Virtual.VendorID))
	viper.SetDefault("virtual.product_id", int(DefaultConfig.Virtual.ProductID))
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
}
