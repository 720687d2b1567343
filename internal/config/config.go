// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order for the file path):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. No file at all: every value comes from the environment or its default.
//
// Environment variables always override values read from the file.
package config

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	HTTPServer `yaml:"http_server"`

	Storage Storage `yaml:"storage"`

	API API `yaml:"api"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Host            string        `yaml:"host"             env:"HOST"             env-default:""`
	Port            int           `yaml:"port"             env:"PORT"             env-default:"3000" validate:"min=0,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Addr is the TCP address the server listens on, e.g. ":3000".
func (s HTTPServer) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage selects the contact backend. Both backends keep data only for
// the life of the process unless Path points at a file.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"   validate:"oneof=memory sqlite"`
	Path   string `yaml:"path"   env:"STORAGE_PATH"   env-default:":memory:"`
}

// API toggles the stricter request checks and the response format.
//
// The true defaults live in defaults() rather than env-default tags:
// cleanenv only applies env-default to zero fields, so an explicit
// "false" in the file would be overwritten.
type API struct {
	// StrictIDs rejects non-numeric or non-positive ids with 400.
	// When off, such ids simply match no contact (404).
	StrictIDs bool `yaml:"strict_ids" env:"API_STRICT_IDS"`

	// ValidateEmail applies the local@domain.tld format check.
	ValidateEmail bool `yaml:"validate_email" env:"API_VALIDATE_EMAIL"`

	// Envelope wraps every body in {success, data, error}.
	Envelope bool `yaml:"envelope" env:"API_ENVELOPE" env-default:"false"`
}

// Load reads the config file at path, or only the environment when path
// is empty, and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func defaults() Config {
	return Config{
		API: API{
			StrictIDs:     true,
			ValidateEmail: true,
		},
	}
}

// MustLoad reads, validates, and returns the application config.
// Functions prefixed with "Must" exit the process on failure, so callers
// need not check an error.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
