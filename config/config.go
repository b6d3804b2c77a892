package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Log        Log        `yaml:"log"`
	Seed       uint64     `yaml:"seed" env:"DICE_SEED" env-default:"0" env-description:"dice seed, 0 seeds from the clock"`
	Color      string     `yaml:"color" env:"DICE_COLOR" env-default:"auto" env-description:"auto, always or never"`
	Simulation Simulation `yaml:"simulation"`
}

type Log struct {
	Level  string `yaml:"level" env:"DICE_LOG_LEVEL" env-default:"warn"`
	Format string `yaml:"format" env:"DICE_LOG_FORMAT" env-default:"console" env-description:"console or json"`
}

type Simulation struct {
	Games     int    `yaml:"games" env:"DICE_SIM_GAMES" env-default:"0"`
	Kind      string `yaml:"kind" env:"DICE_SIM_KIND" env-default:"all"`
	QuitAfter int    `yaml:"quit-after" env:"DICE_SIM_QUIT_AFTER" env-default:"0"`
	RerollAll bool   `yaml:"reroll-all" env:"DICE_SIM_REROLL_ALL" env-default:"false"`
}

// Load reads the YAML file at path, if any, then applies environment
// variables on top.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// ZerologLevel falls back to warn for an unknown level name.
func (that Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(that.Level))
	if err != nil || that.Level == "" {
		return zerolog.WarnLevel
	}
	return level
}

// UseColor decides whether output gets ANSI colours. NO_COLOR always wins.
func (that *Config) UseColor(isTerminal bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(that.Color) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// Usage describes the environment variables understood by Load.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
