// Package configuration builds dispatchers from declarative
// configuration: a JSON document describing the writers, their
// priority filters and formatters, optionally seeded from a dotenv
// file. The dispatch core itself knows nothing about files or
// environment; everything here is outer-boundary bootstrapping.
package configuration

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is the JSON shape of a dispatcher definition.
//
//	{
//	  "writers": [
//	    {"type": "File", "args": {"path": "app.log"},
//	     "priority": "warn", "comparison": "<=", "formatter": "JSON"}
//	  ]
//	}
type Config struct {
	Writers []WriterConfig `json:"writers"`
}

// WriterConfig describes one writer registration.
type WriterConfig struct {
	// Type names a registered writer factory, e.g. "Console" or
	// "File".
	Type string `json:"type"`

	// Args carries factory-specific settings such as a file path.
	Args map[string]any `json:"args,omitempty"`

	// Priority, when set, attaches a priority filter with this
	// threshold severity ("emerg" through "debug").
	Priority string `json:"priority,omitempty"`

	// Comparison is the filter operator symbol. Defaults to "=" when
	// a priority is set, matching exact-severity filtering.
	Comparison string `json:"comparison,omitempty"`

	// Formatter names a registered formatter factory, e.g. "Text",
	// "JSON" or "Detail". Empty keeps the writer's default.
	Formatter string `json:"formatter,omitempty"`
}

// Load reads a JSON configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read configuration")
	}
	return Parse(data)
}

// Parse decodes a JSON configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse configuration")
	}
	return &cfg, nil
}

// LoadEnv loads dotenv files into the process environment before the
// environment-driven helpers run. Missing files are not an error when
// no paths are named, mirroring the usual optional-.env convention.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "load .env")
		}
		return nil
	}
	return errors.Wrap(godotenv.Load(paths...), "load env files")
}

// GetString reads a string argument from a writer's Args.
func GetString(args map[string]any, key, fallback string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// GetStrings reads a string-list argument from a writer's Args.
func GetStrings(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		var out []string
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// EnvString reads an environment variable with a fallback.
func EnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
