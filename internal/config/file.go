package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors StructuredConfig with file-friendly keys.
type fileConfig struct {
	App struct {
		DataDir  string `json:"data_dir" yaml:"data_dir"`
		LogFile  string `json:"log_file" yaml:"log_file"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		ServiceURL     string   `json:"service_url" yaml:"service_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst      int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Feed struct {
		TimelineLimit int `json:"timeline_limit" yaml:"timeline_limit"`
		SearchLimit   int `json:"search_limit" yaml:"search_limit"`
		AuthorLimit   int `json:"author_limit" yaml:"author_limit"`
	} `json:"feed,omitempty" yaml:"feed,omitempty"`

	Bridge struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		DisableMetrics  bool     `json:"disable_metrics" yaml:"disable_metrics"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"bridge,omitempty" yaml:"bridge,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DataDir:  fc.App.DataDir,
			LogFile:  fc.App.LogFile,
			LogLevel: fc.App.LogLevel,
		},
		Adapter: Adapter{
			ServiceURL:     fc.Adapter.ServiceURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			RateLimit:      fc.Adapter.RateLimit,
			RateBurst:      fc.Adapter.RateBurst,
		},
		Feed: Feed{
			TimelineLimit: fc.Feed.TimelineLimit,
			SearchLimit:   fc.Feed.SearchLimit,
			AuthorLimit:   fc.Feed.AuthorLimit,
		},
		Bridge: Bridge{
			HTTPAddress:     fc.Bridge.HTTPAddress,
			DisableMetrics:  fc.Bridge.DisableMetrics,
			ShutdownTimeout: time.Duration(fc.Bridge.ShutdownTimeout),
		},
	}, nil
}

// Duration decodes either a Go duration string ("15s") or a number of
// nanoseconds, from JSON or YAML.
type Duration time.Duration

func parseDurationValue(v any) (Duration, error) {
	switch value := v.(type) {
	case float64:
		return Duration(time.Duration(value)), nil
	case int:
		return Duration(time.Duration(value)), nil
	case string:
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, err
		}
		return Duration(d), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid duration %v", v)
	}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	parsed, err := parseDurationValue(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	parsed, err := parseDurationValue(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
