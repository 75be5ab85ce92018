// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for Bluedog.
// It is populated by merging environment variables, command-line flags and
// an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds local paths and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter configures the XRPC client talking to the Bluesky service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Feed holds the default page sizes of the paginated feeds.
	Feed Feed `envPrefix:"FEED_"`

	// Bridge configures the local HTTP bridge.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file, selected by extension.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// DataDir is the directory holding the session file.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LogFile is where the terminal client writes its log. Defaults to
	// bluedog.log inside DataDir.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter configures the outbound XRPC client.
type Adapter struct {
	// ServiceURL is the base URL of the XRPC service (PDS or entryway).
	// Env: ADAPTER_SERVICE_URL
	ServiceURL string `env:"SERVICE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained number of requests per second.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the number of requests allowed above RateLimit at once.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Feed holds the default page size used when a caller passes limit <= 0.
type Feed struct {
	// Env: FEED_TIMELINE_LIMIT
	TimelineLimit int `env:"TIMELINE_LIMIT"`

	// Env: FEED_SEARCH_LIMIT
	SearchLimit int `env:"SEARCH_LIMIT"`

	// Env: FEED_AUTHOR_LIMIT
	AuthorLimit int `env:"AUTHOR_LIMIT"`
}

// Bridge configures the local HTTP bridge.
type Bridge struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: BRIDGE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// DisableMetrics removes the /metrics endpoint.
	// Env: BRIDGE_DISABLE_METRICS
	DisableMetrics bool `env:"DISABLE_METRICS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: BRIDGE_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Zero fields left after merging are filled from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withFile().
		build()
}
