package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultServiceURL      = "https://bsky.social"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRateLimit       = 10.0
	DefaultRateBurst       = 5
	DefaultTimelineLimit   = 30
	DefaultSearchLimit     = 25
	DefaultAuthorLimit     = 30
	DefaultBridgeAddress   = "localhost:8787"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "debug"

	appDirName  = "bluedog"
	logFileName = "bluedog.log"
)

// Defaults returns the values used for every field no source set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DataDir:  defaultDataDir(),
			LogLevel: DefaultLogLevel,
		},
		Adapter: Adapter{
			ServiceURL:     DefaultServiceURL,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Feed: Feed{
			TimelineLimit: DefaultTimelineLimit,
			SearchLimit:   DefaultSearchLimit,
			AuthorLimit:   DefaultAuthorLimit,
		},
		Bridge: Bridge{
			HTTPAddress:     DefaultBridgeAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "." + appDirName
}
