package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
)

// EnvConfigPath names the environment variable overriding the config location
const EnvConfigPath = "JETBLUE_CONFIG"

// Config is the global application configuration
var Config AppConfig

// DefaultPaths are tried in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used when no file is found.
func Default() AppConfig {
	return AppConfig{
		Search: SearchConfig{
			Passengers: jetblue.PassengerInfo{Adults: 1},
			TimeoutMS:  30000,
		},
		Normalizer: NormalizerConfig{UnknownStatus: "strict"},
		Estimate: EstimateConfig{
			BaseURL:           jetblue.DefaultEstimateURL,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadEnv loads a .env file from the working directory when present.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// LoadAppConfig loads and validates the application configuration. An explicit
// path must exist; otherwise $JETBLUE_CONFIG and then DefaultPaths are tried, and
// Default is used when none exists.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads and validates a configuration without touching Config.
func Load(path string) (AppConfig, error) {
	paths := DefaultPaths
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		}
	}
	if explicit {
		paths = []string{path}
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return AppConfig{}, err
		}
		return Default(), nil
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags and the ordering of hour windows.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	// routes are optional; if present names must be unique
	seen := map[string]bool{}
	for _, r := range cfg.Routes {
		if seen[r.Name] {
			return fmt.Errorf("duplicate route name: %s", r.Name)
		}
		seen[r.Name] = true
	}
	f := cfg.Filters
	if f.DepartAfter != nil && f.DepartBefore != nil && *f.DepartBefore < *f.DepartAfter {
		return errors.New("filters: departBefore cannot be before departAfter")
	}
	if f.ReturnAfter != nil && f.ReturnBefore != nil && *f.ReturnBefore < *f.ReturnAfter {
		return errors.New("filters: returnBefore cannot be before returnAfter")
	}
	return nil
}

// SelectRoute chooses a route by name; fallback to first; ok is false when no routes exist.
func SelectRoute(name string) (Route, bool) {
	return Config.SelectRoute(name)
}

// SelectRoute chooses a route by name; fallback to first.
func (c AppConfig) SelectRoute(name string) (Route, bool) {
	if name != "" {
		for _, r := range c.Routes {
			if r.Name == name {
				return r, true
			}
		}
	}
	if len(c.Routes) > 0 {
		return c.Routes[0], true
	}
	return Route{}, false
}
