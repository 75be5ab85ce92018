package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

type ClientApp struct {
	DataDir  string
	LogFile  string
	LogLevel string
}

type ClientAdapter struct {
	ServiceURL     string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

type ClientFeed struct {
	TimelineLimit int
	SearchLimit   int
	AuthorLimit   int
}

type ClientBridge struct {
	HTTPAddress     string
	DisableMetrics  bool
	ShutdownTimeout time.Duration
}

// ClientConfig is the validated, flattened configuration consumed by the
// terminal client and the HTTP bridge.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Feed    ClientFeed
	Bridge  ClientBridge
}

// GetClientConfig loads the structured configuration from the environment,
// args and the optional config file, then maps and validates it.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	logFile := cfg.App.LogFile
	if logFile == "" && cfg.App.DataDir != "" {
		logFile = filepath.Join(cfg.App.DataDir, logFileName)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DataDir:  cfg.App.DataDir,
			LogFile:  logFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			ServiceURL:     strings.TrimRight(cfg.Adapter.ServiceURL, "/"),
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Feed: ClientFeed{
			TimelineLimit: cfg.Feed.TimelineLimit,
			SearchLimit:   cfg.Feed.SearchLimit,
			AuthorLimit:   cfg.Feed.AuthorLimit,
		},
		Bridge: ClientBridge{
			HTTPAddress:     cfg.Bridge.HTTPAddress,
			DisableMetrics:  cfg.Bridge.DisableMetrics,
			ShutdownTimeout: cfg.Bridge.ShutdownTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}

func validServiceURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
